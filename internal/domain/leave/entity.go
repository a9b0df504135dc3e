package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ValidStatuses lists every status accepted on the update endpoint. Setting a
// processed request back to pending is allowed for admins; re-applying stays
// the prescribed path for employees.
var ValidStatuses = []Status{StatusPending, StatusApproved, StatusRejected}

func IsValidStatus(s Status) bool {
	for _, status := range ValidStatuses {
		if status == s {
			return true
		}
	}
	return false
}

const (
	TypeAnnual = "Annual"
	TypeSick   = "Sick"
	TypeCasual = "Casual"
)

// ValidLeaveTypes is the fixed leave-type vocabulary.
var ValidLeaveTypes = []string{TypeAnnual, TypeSick, TypeCasual}

// LeaveRequest entity. Status is mutated only through the lifecycle service;
// UserID is immutable after creation.
type LeaveRequest struct {
	ID        string
	UserID    string
	LeaveType string

	StartDate time.Time
	EndDate   time.Time

	Reason string
	Status Status

	CreatedAt time.Time

	// Owner display identity (admin listing join)
	Username *string
	Email    *string
}
