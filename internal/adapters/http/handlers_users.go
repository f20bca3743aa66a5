package web

import (
	"errors"
	"net/http"

	"ratedesk/internal/adapters/http/middleware"
	"ratedesk/internal/application/orchestrators"
	userDomain "ratedesk/internal/domain/user"
)

// handleUpdateUserRole handles POST /api/update-user-role.
func handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var body struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	input := orchestrators.UpdateUserRoleInput{
		Email: body.Email,
		Role:  body.Role,
	}
	deps := orchestrators.UpdateUserRoleDeps{
		UserStore: stores.UserStore,
	}

	updated, err := orchestrators.ExecuteUpdateUserRole(r.Context(), input, deps)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, userDomain.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "role updated",
		"user": map[string]any{
			"UserID": updated.UserID,
			"Email":  updated.Email,
			"Role":   updated.Role,
		},
	})
}

// handleMyRole handles GET /api/users/me/role. The subscription-manager
// redirect on the client consumes this.
func handleMyRole(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"email": session.Email,
		"role":  session.Role,
	})
}
