package billing

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when no customer or subscription matches a lookup.
var ErrNotFound = errors.New("billing: no matching customer")

// SubscriptionInfo is the projection of a customer's subscription state
// returned by lookups. The payments provider remains the source of truth;
// nothing here is persisted.
type SubscriptionInfo struct {
	CustomerID     string
	SubscriptionID string
	Status         string // e.g. active, past_due, canceled
}

// Provider abstracts the payments service.
type Provider interface {
	// Configured reports whether the provider has credentials and can serve
	// lookups. Surfaced by the admin diagnostics endpoint.
	Configured() bool
	// LookupByEmail finds the customer with this email and their most recent
	// subscription. Returns ErrNotFound when no customer matches.
	LookupByEmail(ctx context.Context, email string) (SubscriptionInfo, error)
}

// ErrNotConfigured is returned by lookups against an unconfigured provider.
var ErrNotConfigured = errors.New("billing: payments provider not configured")

// UnconfiguredProvider stands in when no payments credentials are set.
// Diagnostics report it as unconfigured and every lookup fails.
type UnconfiguredProvider struct{}

// NewUnconfiguredProvider creates an UnconfiguredProvider.
func NewUnconfiguredProvider() *UnconfiguredProvider {
	return &UnconfiguredProvider{}
}

func (UnconfiguredProvider) Configured() bool {
	return false
}

func (UnconfiguredProvider) LookupByEmail(context.Context, string) (SubscriptionInfo, error) {
	return SubscriptionInfo{}, ErrNotConfigured
}

// ---------- Mock implementation ----------

// MockProvider is a test double that records lookups and returns
// configurable results.
type MockProvider struct {
	mu sync.Mutex

	// Subscriptions maps email -> info returned by LookupByEmail.
	Subscriptions map[string]SubscriptionInfo
	// Lookups collects the emails passed to LookupByEmail.
	Lookups []string

	// LookupErr lets tests inject a failure.
	LookupErr error

	// IsConfigured is returned by Configured.
	IsConfigured bool
}

// NewMockProvider creates a MockProvider ready for use.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Subscriptions: make(map[string]SubscriptionInfo),
		IsConfigured:  true,
	}
}

// Configured reports the configured flag set on the mock.
func (m *MockProvider) Configured() bool {
	return m.IsConfigured
}

// LookupByEmail returns the configured info for the email.
func (m *MockProvider) LookupByEmail(_ context.Context, email string) (SubscriptionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Lookups = append(m.Lookups, email)
	if m.LookupErr != nil {
		return SubscriptionInfo{}, m.LookupErr
	}
	info, ok := m.Subscriptions[email]
	if !ok {
		return SubscriptionInfo{}, ErrNotFound
	}
	return info, nil
}
