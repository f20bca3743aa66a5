package subscription

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyEmail          = errors.New("email is required")
	ErrEmptyCustomerID     = errors.New("stripeCustomerId is required")
	ErrEmptySubscriptionID = errors.New("stripeSubscriptionId is required")
)

// Transfer records a subscription moved onto this product from an external
// billing arrangement. The payments provider remains the source of truth for
// subscription state; this row only links a user email to the Stripe objects.
type Transfer struct {
	ID                   string
	Email                string
	StripeCustomerID     string
	StripeSubscriptionID string
	CreatedAt            time.Time
}

// Validate checks the Transfer fields.
// PRE: Transfer struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Transfer) Validate() error {
	if strings.TrimSpace(t.Email) == "" {
		return ErrEmptyEmail
	}
	if strings.TrimSpace(t.StripeCustomerID) == "" {
		return ErrEmptyCustomerID
	}
	if strings.TrimSpace(t.StripeSubscriptionID) == "" {
		return ErrEmptySubscriptionID
	}
	return nil
}
