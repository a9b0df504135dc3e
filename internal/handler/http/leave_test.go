package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/domain/user"
	handler "github.com/leavedesk/leave-backend-go/internal/handler/http"
	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
	"github.com/leavedesk/leave-backend-go/internal/pkg/jwt"
	"github.com/leavedesk/leave-backend-go/internal/pkg/validator"
)

type fakeLeaveService struct {
	applyFn        func(ctx context.Context, actor leave.Actor, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error)
	historyFn      func(ctx context.Context, actor leave.Actor) ([]leave.LeaveRequest, error)
	listAllFn      func(ctx context.Context, actor leave.Actor) ([]leave.LeaveRequest, error)
	changeStatusFn func(ctx context.Context, actor leave.Actor, leaveID string, req leave.ChangeStatusRequest) (leave.LeaveRequest, error)
	deleteFn       func(ctx context.Context, actor leave.Actor, leaveID string) error
}

func (f *fakeLeaveService) Apply(ctx context.Context, actor leave.Actor, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
	return f.applyFn(ctx, actor, req)
}

func (f *fakeLeaveService) History(ctx context.Context, actor leave.Actor) ([]leave.LeaveRequest, error) {
	return f.historyFn(ctx, actor)
}

func (f *fakeLeaveService) ListAll(ctx context.Context, actor leave.Actor) ([]leave.LeaveRequest, error) {
	return f.listAllFn(ctx, actor)
}

func (f *fakeLeaveService) ChangeStatus(ctx context.Context, actor leave.Actor, leaveID string, req leave.ChangeStatusRequest) (leave.LeaveRequest, error) {
	return f.changeStatusFn(ctx, actor, leaveID, req)
}

func (f *fakeLeaveService) Delete(ctx context.Context, actor leave.Actor, leaveID string) error {
	return f.deleteFn(ctx, actor, leaveID)
}

func newTestRouter(t *testing.T, svc leave.LeaveService) (http.Handler, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	router := handler.NewRouter(
		jwtService,
		handler.NewAuthHandler(nil),
		handler.NewLeaveHandler(svc),
		handler.NewEmployeeHandler(nil),
		"http://localhost:3000",
	)
	return router, jwtService
}

func bearerToken(t *testing.T, jwtService jwt.Service, userID string, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestApplyEndpoint_Created(t *testing.T) {
	ownerID := uuid.NewString()
	leaveID := uuid.NewString()
	svc := &fakeLeaveService{
		applyFn: func(ctx context.Context, actor leave.Actor, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
			assert.Equal(t, ownerID, actor.UserID)
			assert.Equal(t, user.RoleEmployee, actor.Role)
			return leave.LeaveRequest{ID: leaveID, UserID: ownerID, Status: leave.StatusPending}, nil
		},
	}
	router, jwtService := newTestRouter(t, svc)

	start := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	end := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	body := `{"leaveType":"Annual","startDate":"` + start + `","endDate":"` + end + `","reason":"trip"}`
	rec := doRequest(router, http.MethodPost, "/api/leave/apply",
		bearerToken(t, jwtService, ownerID, user.RoleEmployee), body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, leaveID, data["leaveId"])
}

func TestApplyEndpoint_ValidationErrorIs400(t *testing.T) {
	svc := &fakeLeaveService{
		applyFn: func(ctx context.Context, actor leave.Actor, req leave.ApplyLeaveRequest) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{}, validator.ValidationErrors{
				{Field: "startDate", Message: "Start date cannot be in the past"},
			}
		},
	}
	router, jwtService := newTestRouter(t, svc)

	rec := doRequest(router, http.MethodPost, "/api/leave/apply",
		bearerToken(t, jwtService, uuid.NewString(), user.RoleEmployee), `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "Start date cannot be in the past", resp.Error.Details["startDate"])
}

func TestApplyEndpoint_NoToken(t *testing.T) {
	router, _ := newTestRouter(t, &fakeLeaveService{})

	rec := doRequest(router, http.MethodPost, "/api/leave/apply", "", `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHistoryEndpoint_ReturnsOwnerRequests(t *testing.T) {
	ownerID := uuid.NewString()
	svc := &fakeLeaveService{
		historyFn: func(ctx context.Context, actor leave.Actor) ([]leave.LeaveRequest, error) {
			assert.Equal(t, ownerID, actor.UserID)
			return []leave.LeaveRequest{
				{ID: "l1", UserID: ownerID, Status: leave.StatusApproved, CreatedAt: time.Now()},
			}, nil
		},
	}
	router, jwtService := newTestRouter(t, svc)

	rec := doRequest(router, http.MethodGet, "/api/leave/history",
		bearerToken(t, jwtService, ownerID, user.RoleEmployee), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "approved", first["status"])
}

func TestListAllEndpoint_NonAdminBlockedByMiddleware(t *testing.T) {
	called := false
	svc := &fakeLeaveService{
		listAllFn: func(ctx context.Context, actor leave.Actor) ([]leave.LeaveRequest, error) {
			called = true
			return nil, nil
		},
	}
	router, jwtService := newTestRouter(t, svc)

	rec := doRequest(router, http.MethodGet, "/api/leave/all",
		bearerToken(t, jwtService, uuid.NewString(), user.RoleEmployee), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called, "service must not be reached without the admin role")
}

func TestChangeStatusEndpoint_AdminUpdates(t *testing.T) {
	leaveID := uuid.NewString()
	svc := &fakeLeaveService{
		changeStatusFn: func(ctx context.Context, actor leave.Actor, id string, req leave.ChangeStatusRequest) (leave.LeaveRequest, error) {
			assert.Equal(t, leaveID, id)
			return leave.LeaveRequest{ID: id, Status: leave.StatusApproved}, nil
		},
	}
	router, jwtService := newTestRouter(t, svc)

	rec := doRequest(router, http.MethodPut, "/api/leave/status/"+leaveID,
		bearerToken(t, jwtService, uuid.NewString(), user.RoleAdmin), `{"status":"approved"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "approved", data["newStatus"])
}

func TestDeleteEndpoint_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		svcErr   error
		wantCode int
	}{
		{"not found", leave.ErrLeaveRequestNotFound, http.StatusNotFound},
		{"not pending", leave.ErrLeaveNotPending, http.StatusBadRequest},
		{"not owner", leave.ErrNotRequestOwner, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeLeaveService{
				deleteFn: func(ctx context.Context, actor leave.Actor, leaveID string) error {
					return tt.svcErr
				},
			}
			router, jwtService := newTestRouter(t, svc)

			rec := doRequest(router, http.MethodDelete, "/api/leave/delete/"+uuid.NewString(),
				bearerToken(t, jwtService, uuid.NewString(), user.RoleEmployee), "")

			assert.Equal(t, tt.wantCode, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
		})
	}
}

func TestDeleteEndpoint_Success(t *testing.T) {
	leaveID := uuid.NewString()
	svc := &fakeLeaveService{
		deleteFn: func(ctx context.Context, actor leave.Actor, id string) error {
			assert.Equal(t, leaveID, id)
			return nil
		},
	}
	router, jwtService := newTestRouter(t, svc)

	rec := doRequest(router, http.MethodDelete, "/api/leave/delete/"+leaveID,
		bearerToken(t, jwtService, uuid.NewString(), user.RoleEmployee), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, leaveID, data["leaveId"])
}
