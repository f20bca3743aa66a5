package bill

import (
	"context"

	domain "ratedesk/internal/domain/bill"
)

// Store persists Bill records.
type Store interface {
	Save(ctx context.Context, value domain.Bill) error
	// DeleteByURL removes the bill with exactly this url. Deleting a url with
	// no matching row is not an error.
	DeleteByURL(ctx context.Context, url string) error
	Count(ctx context.Context) (int, error)
}
