package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"ratedesk/internal/adapters/billing"
	subscriptionStore "ratedesk/internal/adapters/storage/subscription"
	subscriptionDomain "ratedesk/internal/domain/subscription"

	"github.com/google/uuid"
)

// TransferSubscriptionInput links a user email to externally created Stripe
// objects.
type TransferSubscriptionInput struct {
	Email                string
	StripeCustomerID     string
	StripeSubscriptionID string
}

// TransferSubscriptionDeps holds dependencies for TransferSubscription.
type TransferSubscriptionDeps struct {
	SubscriptionStore subscriptionStore.Store
}

// ExecuteTransferSubscription records a transferred subscription.
// PRE: Input fields are populated from admin input
// POST: Transfer row persisted
func ExecuteTransferSubscription(ctx context.Context, input TransferSubscriptionInput, deps TransferSubscriptionDeps) (subscriptionDomain.Transfer, error) {
	transfer := subscriptionDomain.Transfer{
		ID:                   uuid.New().String(),
		Email:                input.Email,
		StripeCustomerID:     input.StripeCustomerID,
		StripeSubscriptionID: input.StripeSubscriptionID,
		CreatedAt:            time.Now(),
	}
	if err := transfer.Validate(); err != nil {
		return subscriptionDomain.Transfer{}, err
	}

	if err := deps.SubscriptionStore.Save(ctx, transfer); err != nil {
		return subscriptionDomain.Transfer{}, err
	}

	slog.Info("billing_event", "event", "subscription_transferred", "email", transfer.Email, "subscription_id", transfer.StripeSubscriptionID)
	return transfer, nil
}

// LookupSubscriptionDeps holds dependencies for LookupSubscription.
type LookupSubscriptionDeps struct {
	Billing billing.Provider
}

// ExecuteLookupSubscription queries the payments provider for a customer's
// subscription state by email. Purely a read; nothing is persisted.
func ExecuteLookupSubscription(ctx context.Context, email string, deps LookupSubscriptionDeps) (billing.SubscriptionInfo, error) {
	return deps.Billing.LookupByEmail(ctx, email)
}
