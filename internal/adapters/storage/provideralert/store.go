package provideralert

import (
	"context"

	domain "ratedesk/internal/domain/provideralert"
)

// Store persists provider alerts.
type Store interface {
	Save(ctx context.Context, value domain.Alert) error
	// DeleteByID removes the alert with exactly this id. Zero matches is not
	// an error.
	DeleteByID(ctx context.Context, id string) error
	ListRecent(ctx context.Context, limit int) ([]domain.Alert, error)
	Count(ctx context.Context) (int, error)
}
