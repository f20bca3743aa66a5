package user

import (
	"context"

	domain "ratedesk/internal/domain/user"
)

// Store persists product User rows.
type Store interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Save(ctx context.Context, value domain.User) error
	// UpdateRoleByEmail sets Role and UpdatedAt on the row keyed by email
	// equality and returns the updated row. Returns domain.ErrUserNotFound
	// when no row matches.
	UpdateRoleByEmail(ctx context.Context, email, role string) (domain.User, error)
}
