package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leavedesk/leave-backend-go/internal/domain/user"
)

func TestCanChangeStatus(t *testing.T) {
	tests := []struct {
		role user.Role
		want error
	}{
		{user.RoleAdmin, nil},
		{user.RoleHR, ErrAdminOnly},
		{user.RoleEmployee, ErrAdminOnly},
	}

	for _, tt := range tests {
		got := CanChangeStatus(Actor{UserID: "u1", Role: tt.role})
		assert.Equal(t, tt.want, got, "role %s", tt.role)
	}
}

func TestCanListAll(t *testing.T) {
	assert.NoError(t, CanListAll(Actor{UserID: "u1", Role: user.RoleAdmin}))
	assert.ErrorIs(t, CanListAll(Actor{UserID: "u1", Role: user.RoleEmployee}), ErrAdminOnly)
	assert.ErrorIs(t, CanListAll(Actor{UserID: "u1", Role: user.RoleHR}), ErrAdminOnly)
}

func TestCanDelete(t *testing.T) {
	owner := Actor{UserID: "owner", Role: user.RoleEmployee}
	stranger := Actor{UserID: "stranger", Role: user.RoleEmployee}
	admin := Actor{UserID: "admin", Role: user.RoleAdmin}

	pending := LeaveRequest{ID: "l1", UserID: "owner", Status: StatusPending}
	approved := LeaveRequest{ID: "l2", UserID: "owner", Status: StatusApproved}
	rejected := LeaveRequest{ID: "l3", UserID: "owner", Status: StatusRejected}

	tests := []struct {
		name  string
		actor Actor
		req   LeaveRequest
		want  error
	}{
		{"owner deletes own pending", owner, pending, nil},
		{"admin deletes anyone's pending", admin, pending, nil},
		{"stranger denied before state is revealed", stranger, pending, ErrNotRequestOwner},
		{"stranger denied on approved too", stranger, approved, ErrNotRequestOwner},
		{"owner blocked on approved", owner, approved, ErrLeaveNotPending},
		{"owner blocked on rejected", owner, rejected, ErrLeaveNotPending},
		{"admin blocked on approved", admin, approved, ErrLeaveNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDelete(tt.actor, tt.req))
		})
	}
}
