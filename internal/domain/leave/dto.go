package leave

import (
	"strings"
	"time"

	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
)

const maxReasonLength = 500

type ApplyLeaveRequest struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`

	// Populated by Validate; normalized to midnight server time.
	ParsedStartDate time.Time `json:"-"`
	ParsedEndDate   time.Time `json:"-"`
}

// Validate accumulates every violated constraint instead of stopping at the
// first. Dependent checks (type membership, date ordering, past-date) only run
// once their prerequisites hold, so no field reports two failures at once.
func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "Leave type is required and must be a non-empty string",
		})
	} else if !validator.IsInSlice(r.LeaveType, ValidLeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "Leave type must be one of: Annual, Sick, Casual",
		})
	}

	startDate, startOK := time.Time{}, false
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "Start date is required and must be a valid date string",
		})
	} else if startDate, startOK = validator.ParseDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "Start date must be a valid date format",
		})
	}

	endDate, endOK := time.Time{}, false
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "End date is required and must be a valid date string",
		})
	} else if endDate, endOK = validator.ParseDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "End date must be a valid date format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Reason is required and must be a non-empty string",
		})
	} else if len(strings.TrimSpace(r.Reason)) > maxReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Reason must not exceed 500 characters",
		})
	}

	if startOK && startDate.Before(validator.Today()) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "Start date cannot be in the past",
		})
	}
	if startOK && endOK && !endDate.After(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "End date must be after start date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.ParsedStartDate = startDate
	r.ParsedEndDate = endDate
	return nil
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// Validate checks the target status and normalizes it to lowercase.
func (r *ChangeStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status is required and must be a non-empty string",
		})
	} else if r.Status = strings.ToLower(strings.TrimSpace(r.Status)); !IsValidStatus(Status(r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status must be one of: pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	LeaveType string  `json:"leaveType"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    string  `json:"reason"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
}

func ToResponse(req LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:        req.ID,
		UserID:    req.UserID,
		LeaveType: req.LeaveType,
		StartDate: validator.FormatDate(req.StartDate),
		EndDate:   validator.FormatDate(req.EndDate),
		Reason:    req.Reason,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt.Format(time.RFC3339),
		Username:  req.Username,
		Email:     req.Email,
	}
}

func ToListResponse(requests []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, ToResponse(req))
	}
	return out
}
