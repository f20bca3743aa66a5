package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	userStore "ratedesk/internal/adapters/storage/user"
	userDomain "ratedesk/internal/domain/user"
)

// UpdateUserRoleInput carries input for updating a product user's role.
type UpdateUserRoleInput struct {
	Email string
	Role  string
}

// UpdateUserRoleDeps holds dependencies for UpdateUserRole.
type UpdateUserRoleDeps struct {
	UserStore userStore.Store
}

// ExecuteUpdateUserRole validates and applies a role change keyed by email.
// Only user and subscription_manager are assignable; last write wins.
// PRE: Email and Role are populated from user input
// POST: Row updated with new Role and UpdatedAt, or no mutation on error
func ExecuteUpdateUserRole(ctx context.Context, input UpdateUserRoleInput, deps UpdateUserRoleDeps) (userDomain.User, error) {
	if strings.TrimSpace(input.Email) == "" {
		return userDomain.User{}, userDomain.ErrEmptyEmail
	}
	if !userDomain.IsAssignableRole(input.Role) {
		return userDomain.User{}, userDomain.ErrInvalidRole
	}

	updated, err := deps.UserStore.UpdateRoleByEmail(ctx, input.Email, input.Role)
	if err != nil {
		return userDomain.User{}, err
	}

	slog.Info("user_event", "event", "role_updated", "email", updated.Email, "role", updated.Role)
	return updated, nil
}
