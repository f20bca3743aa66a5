package user

import (
	"context"
	"database/sql"
	"time"

	"ratedesk/internal/adapters/storage"
	domain "ratedesk/internal/domain/user"
)

const timeFormat = "2006-01-02T15:04:05.999999999Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new UserStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByEmail retrieves a User by email.
// PRE: email is non-empty
// POST: Returns the row or domain.ErrUserNotFound
func (s *SQLiteStore) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := "SELECT UserID, Email, Role, UpdatedAt FROM User WHERE Email = ?"
	row := s.db.QueryRowContext(ctx, query, email)

	entity, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return domain.User{}, domain.ErrUserNotFound
	}
	return entity, err
}

// Save persists a User to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.User) error {
	query := `INSERT INTO User (UserID, Email, Role, UpdatedAt)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(UserID) DO UPDATE SET
			Email=excluded.Email,
			Role=excluded.Role,
			UpdatedAt=excluded.UpdatedAt`
	var updatedAt any
	if !entity.UpdatedAt.IsZero() {
		updatedAt = entity.UpdatedAt.Format(timeFormat)
	}
	_, err := s.db.ExecContext(ctx, query,
		entity.UserID,
		entity.Email,
		entity.Role,
		updatedAt,
	)
	return err
}

// UpdateRoleByEmail sets Role and UpdatedAt keyed by email equality.
// Last write wins; there is no optimistic concurrency check.
// PRE: role is an assignable role
// POST: Returns the updated row or domain.ErrUserNotFound
func (s *SQLiteStore) UpdateRoleByEmail(ctx context.Context, email, role string) (domain.User, error) {
	now := time.Now().Format(timeFormat)
	res, err := s.db.ExecContext(ctx,
		"UPDATE User SET Role = ?, UpdatedAt = ? WHERE Email = ?",
		role, now, email,
	)
	if err != nil {
		return domain.User{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, err
	}
	if affected == 0 {
		return domain.User{}, domain.ErrUserNotFound
	}
	return s.GetByEmail(ctx, email)
}

// scanUser extracts a User from a row scanner function.
func scanUser(scan func(dest ...any) error) (domain.User, error) {
	var entity domain.User
	var updatedAt sql.NullString
	err := scan(
		&entity.UserID,
		&entity.Email,
		&entity.Role,
		&updatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	if updatedAt.Valid {
		entity.UpdatedAt, _ = time.Parse(timeFormat, updatedAt.String)
	}
	return entity, nil
}
