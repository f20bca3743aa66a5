package billing

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/subscription"
)

// StripeProvider implements Provider using the Stripe API.
type StripeProvider struct {
	apiKey string
}

// NewStripeProvider creates a StripeProvider with the given API key.
func NewStripeProvider(apiKey string) *StripeProvider {
	stripe.Key = apiKey
	return &StripeProvider{apiKey: apiKey}
}

// Configured reports whether an API key is present.
func (p *StripeProvider) Configured() bool {
	return p.apiKey != ""
}

// LookupByEmail finds the Stripe customer with this email and their most
// recent subscription.
func (p *StripeProvider) LookupByEmail(_ context.Context, email string) (SubscriptionInfo, error) {
	custParams := &stripe.CustomerListParams{Email: stripe.String(email)}
	custParams.Limit = stripe.Int64(1)

	custIter := customer.List(custParams)
	if !custIter.Next() {
		if err := custIter.Err(); err != nil {
			return SubscriptionInfo{}, fmt.Errorf("billing: list stripe customers: %w", err)
		}
		return SubscriptionInfo{}, ErrNotFound
	}
	cust := custIter.Customer()

	info := SubscriptionInfo{CustomerID: cust.ID}

	subParams := &stripe.SubscriptionListParams{Customer: stripe.String(cust.ID)}
	subParams.Limit = stripe.Int64(1)

	subIter := subscription.List(subParams)
	if subIter.Next() {
		sub := subIter.Subscription()
		info.SubscriptionID = sub.ID
		info.Status = string(sub.Status)
	} else if err := subIter.Err(); err != nil {
		return SubscriptionInfo{}, fmt.Errorf("billing: list stripe subscriptions: %w", err)
	}

	return info, nil
}
