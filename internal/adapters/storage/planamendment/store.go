package planamendment

import (
	"context"

	domain "ratedesk/internal/domain/planamendment"
)

// Store persists state plan amendments.
type Store interface {
	Save(ctx context.Context, value domain.Amendment) error
	// DeleteByID removes the amendment with exactly this id. Zero matches is
	// not an error.
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
