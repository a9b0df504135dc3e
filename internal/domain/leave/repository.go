package leave

import (
	"context"
)

// LeaveRequestRepository - interface for leave_requests table.
// All listings order by created_at DESC with id DESC as tiebreak so output is
// deterministic under identical timestamps.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByUserID(ctx context.Context, userID string) ([]LeaveRequest, error)
	// GetAll joins each request with its owner's username and email.
	GetAll(ctx context.Context) ([]LeaveRequest, error)
	// UpdateStatus sets the status in a single conditional statement and
	// returns the updated row; ErrLeaveRequestNotFound when no row matched.
	UpdateStatus(ctx context.Context, id string, status Status) (LeaveRequest, error)
	// DeleteIfPending removes the request only while it is still pending.
	// The rows-affected result is the authoritative signal: false means the
	// request vanished or left pending between check and delete.
	DeleteIfPending(ctx context.Context, id string) (bool, error)
}
