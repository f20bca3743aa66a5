package bill

import (
	"context"

	"ratedesk/internal/adapters/storage"
	domain "ratedesk/internal/domain/bill"
)

const timeFormat = "2006-01-02T15:04:05.999999999Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new BillStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists a Bill to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Bill) error {
	query := `INSERT INTO bill_track_50 (url, state, bill_name, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			state=excluded.state,
			bill_name=excluded.bill_name`
	_, err := s.db.ExecContext(ctx, query,
		entity.URL,
		entity.State,
		entity.BillName,
		entity.CreatedAt.Format(timeFormat),
	)
	return err
}

// DeleteByURL removes the bill matching the url exactly.
// PRE: url is non-empty
// POST: No row with this url remains; zero matches is still success
func (s *SQLiteStore) DeleteByURL(ctx context.Context, url string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM bill_track_50 WHERE url = ?", url)
	return err
}

// Count returns the total number of bill records.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bill_track_50").Scan(&count)
	return count, err
}
