package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
)

// LeaveServiceImpl enforces the pending → approved/rejected lifecycle. It
// holds no mutable state; concurrent callers are safe because every
// check-then-mutate pair collapses into one conditional SQL statement at the
// repository.
type LeaveServiceImpl struct {
	db               *database.DB
	leaveRequestRepo leave.LeaveRequestRepository
}

func NewLeaveService(db *database.DB, leaveRequestRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:               db,
		leaveRequestRepo: leaveRequestRepo,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, actor leave.Actor, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	request := leave.LeaveRequest{
		UserID:    actor.UserID,
		LeaveType: req.LeaveType,
		StartDate: req.ParsedStartDate,
		EndDate:   req.ParsedEndDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}

	created, err := s.leaveRequestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to persist leave request: %w", err)
	}

	slog.Info("leave request created",
		"leave_id", created.ID,
		"user_id", actor.UserID,
		"leave_type", created.LeaveType,
	)

	return created, nil
}

// History implements leave.LeaveService.
func (s *LeaveServiceImpl) History(ctx context.Context, actor leave.Actor) ([]leave.LeaveRequest, error) {
	requests, err := s.leaveRequestRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave history: %w", err)
	}
	if requests == nil {
		requests = []leave.LeaveRequest{}
	}
	return requests, nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context, actor leave.Actor) ([]leave.LeaveRequest, error) {
	if err := leave.CanListAll(actor); err != nil {
		return nil, err
	}

	requests, err := s.leaveRequestRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave requests: %w", err)
	}
	if requests == nil {
		requests = []leave.LeaveRequest{}
	}
	return requests, nil
}

// ChangeStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) ChangeStatus(ctx context.Context, actor leave.Actor, leaveID string, req leave.ChangeStatusRequest) (leave.LeaveRequest, error) {
	if err := leave.CanChangeStatus(actor); err != nil {
		return leave.LeaveRequest{}, err
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	updated, err := s.leaveRequestRepo.UpdateStatus(ctx, leaveID, leave.Status(req.Status))
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	slog.Info("leave request status changed",
		"leave_id", updated.ID,
		"new_status", updated.Status,
		"changed_by", actor.UserID,
	)

	return updated, nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, actor leave.Actor, leaveID string) error {
	request, err := s.leaveRequestRepo.GetByID(ctx, leaveID)
	if err != nil {
		return err
	}

	if err := leave.CanDelete(actor, request); err != nil {
		return err
	}

	// The conditional delete re-checks the pending state; zero rows affected
	// means a concurrent transition or delete won, and not-found is the
	// authoritative answer.
	deleted, err := s.leaveRequestRepo.DeleteIfPending(ctx, leaveID)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if !deleted {
		return leave.ErrLeaveRequestNotFound
	}

	slog.Info("leave request deleted",
		"leave_id", leaveID,
		"deleted_by", actor.UserID,
	)

	return nil
}
