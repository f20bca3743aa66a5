package user_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"ratedesk/internal/adapters/storage"
	userStore "ratedesk/internal/adapters/storage/user"
	domain "ratedesk/internal/domain/user"
)

func newTestStore(t *testing.T) *userStore.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return userStore.NewSQLiteStore(db)
}

func TestSQLiteStore_SaveAndGetByEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u := domain.User{
		UserID:    "u1",
		Email:     "ada@example.com",
		Role:      domain.RoleUser,
		UpdatedAt: time.Now().UTC(),
	}
	if err := store.Save(ctx, u); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.GetByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.UserID != "u1" || got.Role != domain.RoleUser {
		t.Errorf("got %+v", got)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not round-tripped")
	}
}

func TestSQLiteStore_GetByEmail_NotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("got %v, want %v", err, domain.ErrUserNotFound)
	}
}

func TestSQLiteStore_UpdateRoleByEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, domain.User{UserID: "u1", Email: "ada@example.com", Role: domain.RoleUser}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	updated, err := store.UpdateRoleByEmail(ctx, "ada@example.com", domain.RoleSubscriptionManager)
	if err != nil {
		t.Fatalf("UpdateRoleByEmail: %v", err)
	}
	if updated.Role != domain.RoleSubscriptionManager {
		t.Errorf("got role %q, want %q", updated.Role, domain.RoleSubscriptionManager)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set by role update")
	}
}

func TestSQLiteStore_UpdateRoleByEmail_NotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.UpdateRoleByEmail(context.Background(), "ghost@example.com", domain.RoleUser)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("got %v, want %v", err, domain.ErrUserNotFound)
	}
}

// Last write wins: two updates in sequence leave the second role in place.
func TestSQLiteStore_UpdateRoleByEmail_LastWriteWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, domain.User{UserID: "u1", Email: "ada@example.com", Role: domain.RoleUser}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.UpdateRoleByEmail(ctx, "ada@example.com", domain.RoleSubscriptionManager); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if _, err := store.UpdateRoleByEmail(ctx, "ada@example.com", domain.RoleUser); err != nil {
		t.Fatalf("second update: %v", err)
	}

	got, err := store.GetByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.Role != domain.RoleUser {
		t.Errorf("got role %q, want %q", got.Role, domain.RoleUser)
	}
}
