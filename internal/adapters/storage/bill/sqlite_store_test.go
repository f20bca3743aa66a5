package bill_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"ratedesk/internal/adapters/storage"
	billStore "ratedesk/internal/adapters/storage/bill"
	domain "ratedesk/internal/domain/bill"
)

func newTestStore(t *testing.T) *billStore.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return billStore.NewSQLiteStore(db)
}

func TestSQLiteStore_SaveAndCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	bills := []domain.Bill{
		{URL: "https://bills.test/1", State: "CA", BillName: "AB 123", CreatedAt: time.Now()},
		{URL: "https://bills.test/2", State: "TX", BillName: "HB 456", CreatedAt: time.Now()},
	}
	for _, b := range bills {
		if err := store.Save(ctx, b); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("got count %d, want 2", count)
	}

	// Saving the same url again updates rather than duplicates
	if err := store.Save(ctx, domain.Bill{URL: "https://bills.test/1", State: "CA", BillName: "AB 123 (amended)", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("re-Save: %v", err)
	}
	count, _ = store.Count(ctx)
	if count != 2 {
		t.Errorf("upsert duplicated row: count %d", count)
	}
}

func TestSQLiteStore_DeleteByURL(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, domain.Bill{URL: "https://bills.test/1", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.DeleteByURL(ctx, "https://bills.test/1"); err != nil {
		t.Fatalf("DeleteByURL: %v", err)
	}
	count, _ := store.Count(ctx)
	if count != 0 {
		t.Errorf("row survived delete: count %d", count)
	}
}

// Deleting a url with no matching row is not an error.
func TestSQLiteStore_DeleteByURL_Absent(t *testing.T) {
	store := newTestStore(t)
	if err := store.DeleteByURL(context.Background(), "https://bills.test/no-such"); err != nil {
		t.Errorf("DeleteByURL on absent row: %v", err)
	}
}
