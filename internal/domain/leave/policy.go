package leave

import "github.com/leavedesk/leave-backend-go/internal/domain/user"

// Actor is the verified identity a request runs as. The lifecycle service
// trusts it as-is; verification happens at the token layer.
type Actor struct {
	UserID string
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// Decision is the outcome of an authorization check. A nil error means allow;
// otherwise the sentinel names the denial. Every role check in the lifecycle
// service goes through these functions, never through inline comparisons.
type Decision error

// CanChangeStatus gates the approve/reject/pending transition.
func CanChangeStatus(a Actor) Decision {
	if !a.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

// CanListAll gates the company-wide listing.
func CanListAll(a Actor) Decision {
	if !a.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

// CanDelete gates deletion: admins may delete any request, owners their own,
// and only while the request is still pending. Ownership is checked before
// state so a non-owner learns nothing about the request's status.
func CanDelete(a Actor, req LeaveRequest) Decision {
	if !a.IsAdmin() && a.UserID != req.UserID {
		return ErrNotRequestOwner
	}
	if req.Status != StatusPending {
		return ErrLeaveNotPending
	}
	return nil
}
