package subscription

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ratedesk/internal/adapters/storage"
	domain "ratedesk/internal/domain/subscription"
)

const timeFormat = "2006-01-02T15:04:05.999999999Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new transferred subscription store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Transfer record.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Transfer) error {
	query := `INSERT INTO transferred_subscriptions (id, email, stripe_customer_id, stripe_subscription_id, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			email=excluded.email,
			stripe_customer_id=excluded.stripe_customer_id,
			stripe_subscription_id=excluded.stripe_subscription_id`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Email,
		entity.StripeCustomerID,
		entity.StripeSubscriptionID,
		entity.CreatedAt.Format(timeFormat),
	)
	return err
}

// GetByEmail retrieves the most recent Transfer for an email.
// PRE: email is non-empty
// POST: Returns the record or an error if not found
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.Transfer, error) {
	query := `SELECT id, email, stripe_customer_id, stripe_subscription_id, created_at
		FROM transferred_subscriptions WHERE email = ? ORDER BY created_at DESC LIMIT 1`
	row := s.db.QueryRowContext(ctx, query, email)

	var entity domain.Transfer
	var createdAt string
	err := row.Scan(&entity.ID, &entity.Email, &entity.StripeCustomerID, &entity.StripeSubscriptionID, &createdAt)
	if err == sql.ErrNoRows {
		return domain.Transfer{}, fmt.Errorf("transferred subscription not found: %w", err)
	}
	if err != nil {
		return domain.Transfer{}, err
	}
	entity.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	return entity, nil
}
