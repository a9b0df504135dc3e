package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/domain/user"
)

// actorFromRequest extracts the verified identity from the request's JWT
// claims. The verifier middleware has already run, so a failure here means a
// malformed token rather than a missing one.
func actorFromRequest(r *http.Request) (leave.Actor, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return leave.Actor{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return leave.Actor{}, false
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return leave.Actor{}, false
	}

	return leave.Actor{UserID: userID, Role: user.Role(role)}, true
}
