package provideralert

import (
	"context"
	"time"

	"ratedesk/internal/adapters/storage"
	domain "ratedesk/internal/domain/provideralert"
)

const timeFormat = "2006-01-02T15:04:05.999999999Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new provider alert store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists an Alert to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Alert) error {
	query := `INSERT INTO provider_alerts (id, subject, body, state, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			subject=excluded.subject,
			body=excluded.body,
			state=excluded.state`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Subject,
		entity.Body,
		entity.State,
		entity.CreatedAt.Format(timeFormat),
	)
	return err
}

// DeleteByID removes the alert matching the id exactly.
// PRE: id is non-empty
// POST: No row with this id remains; zero matches is still success
func (s *SQLiteStore) DeleteByID(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM provider_alerts WHERE id = ?", id)
	return err
}

// ListRecent returns the newest alerts, up to limit.
// PRE: limit > 0
// POST: Returns alerts ordered by created_at descending
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]domain.Alert, error) {
	query := "SELECT id, subject, body, state, created_at FROM provider_alerts ORDER BY created_at DESC LIMIT ?"
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Alert
	for rows.Next() {
		var entity domain.Alert
		var createdAt string
		if err := rows.Scan(&entity.ID, &entity.Subject, &entity.Body, &entity.State, &createdAt); err != nil {
			return nil, err
		}
		entity.CreatedAt, _ = time.Parse(timeFormat, createdAt)
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the total number of alerts.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM provider_alerts").Scan(&count)
	return count, err
}
