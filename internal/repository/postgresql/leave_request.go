package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	request.ID = uuid.NewString()

	query := `
		INSERT INTO leave_requests (
			id, user_id, leave_type, start_date, end_date, reason, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW()
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.UserID, request.LeaveType,
		request.StartDate, request.EndDate, request.Reason, request.Status,
	).Scan(&request.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, reason, status, created_at
		FROM leave_requests
		WHERE id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.LeaveType,
		&req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return req, nil
}

func (r *leaveRequestRepositoryImpl) GetByUserID(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// id DESC tiebreak keeps ordering deterministic for identical timestamps
	query := `
		SELECT id, user_id, leave_type, start_date, end_date, reason, status, created_at
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.UserID, &req.LeaveType,
			&req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) GetAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.leave_type, lr.start_date, lr.end_date,
		       lr.reason, lr.status, lr.created_at,
		       u.username, u.email
		FROM leave_requests lr
		INNER JOIN users u ON lr.user_id = u.id
		ORDER BY lr.created_at DESC, lr.id DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		var username, email string
		err := rows.Scan(
			&req.ID, &req.UserID, &req.LeaveType,
			&req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.CreatedAt,
			&username, &email,
		)
		if err != nil {
			return nil, err
		}
		req.Username = &username
		req.Email = &email
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	// Single conditional write: existence check and mutation happen in one
	// statement, so a concurrent delete surfaces as no-rows here.
	query := `
		UPDATE leave_requests
		SET status = $1
		WHERE id = $2
		RETURNING id, user_id, leave_type, start_date, end_date, reason, status, created_at
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, status, id).Scan(
		&req.ID, &req.UserID, &req.LeaveType,
		&req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update status for leave request %s: %w", id, err)
	}

	return req, nil
}

func (r *leaveRequestRepositoryImpl) DeleteIfPending(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM leave_requests
		WHERE id = $1 AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return commandTag.RowsAffected() == 1, nil
}
