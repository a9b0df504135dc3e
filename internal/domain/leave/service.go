package leave

import (
	"context"
)

// LeaveService is the request lifecycle engine: it owns status transitions,
// authorization for them, and deletion eligibility.
type LeaveService interface {
	// Apply validates and persists a new request; status is always pending.
	Apply(ctx context.Context, actor Actor, req ApplyLeaveRequest) (LeaveRequest, error)
	// History lists the actor's own requests, newest first.
	History(ctx context.Context, actor Actor) ([]LeaveRequest, error)
	// ListAll lists every request with owner identity; admin only.
	ListAll(ctx context.Context, actor Actor) ([]LeaveRequest, error)
	// ChangeStatus moves a request between states; admin only.
	ChangeStatus(ctx context.Context, actor Actor, leaveID string, req ChangeStatusRequest) (LeaveRequest, error)
	// Delete removes a pending request; owner or admin only.
	Delete(ctx context.Context, actor Actor, leaveID string) error
}
