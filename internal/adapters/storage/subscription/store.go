package subscription

import (
	"context"

	domain "ratedesk/internal/domain/subscription"
)

// Store persists transferred subscription records.
type Store interface {
	Save(ctx context.Context, value domain.Transfer) error
	GetByEmail(ctx context.Context, email string) (domain.Transfer, error)
}
