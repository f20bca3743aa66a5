package planamendment

import (
	"context"

	"ratedesk/internal/adapters/storage"
	domain "ratedesk/internal/domain/planamendment"
)

const timeFormat = "2006-01-02T15:04:05.999999999Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new plan amendment store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save persists an Amendment to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Amendment) error {
	query := `INSERT INTO state_plan_amendments (id, state, title, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			state=excluded.state,
			title=excluded.title`
	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.State,
		entity.Title,
		entity.CreatedAt.Format(timeFormat),
	)
	return err
}

// DeleteByID removes the amendment matching the id exactly.
// PRE: id is non-empty
// POST: No row with this id remains; zero matches is still success
func (s *SQLiteStore) DeleteByID(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM state_plan_amendments WHERE id = ?", id)
	return err
}

// Count returns the total number of amendments.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM state_plan_amendments").Scan(&count)
	return count, err
}
