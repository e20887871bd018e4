package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/roomease/internal/household"
	"github.com/mmynk/roomease/internal/models"
	"github.com/mmynk/roomease/internal/storage"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()

	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "roomease-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store, dbPath
}

func TestSQLiteStore(t *testing.T) {
	store, dbPath := newTestStore(t)
	defer store.Close()

	ctx := context.Background()

	t.Run("Get returns ErrNotFound for missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "nonexistent")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Put then Get", func(t *testing.T) {
		if err := store.Put(ctx, "k", []byte(`["a"]`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `["a"]` {
			t.Errorf("Get = %s, want [\"a\"]", got)
		}
	})

	t.Run("Put overwrites", func(t *testing.T) {
		if err := store.Put(ctx, "k", []byte(`["b"]`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `["b"]` {
			t.Errorf("Get = %s, want last write", got)
		}
	})

	t.Run("reopening keeps data and skips applied migrations", func(t *testing.T) {
		reopened, err := New(dbPath)
		if err != nil {
			t.Fatalf("Reopen failed: %v", err)
		}
		defer reopened.Close()

		got, err := reopened.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get after reopen failed: %v", err)
		}
		if string(got) != `["b"]` {
			t.Errorf("Get after reopen = %s", got)
		}
	})
}

func TestHouseholdSurvivesRestart(t *testing.T) {
	store, dbPath := newTestStore(t)
	ctx := context.Background()

	snapshots := storage.NewSnapshots(store)
	h := household.New(snapshots.Load(ctx), household.WithObserver(snapshots))

	roommate, err := h.AddRoommate(ctx, "Kavya")
	if err != nil {
		t.Fatalf("AddRoommate failed: %v", err)
	}
	if _, err := h.AddExpense(ctx, household.NewExpense{
		Title:    "Cab",
		Amount:   decimal.NewFromInt(600),
		Category: models.CategoryTravel,
		PayerID:  roommate.ID,
	}); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	h.SettleUtilities(ctx)

	snapshots.Close()
	store.Close()

	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer reopened.Close()

	restored := storage.NewSnapshots(reopened)
	defer restored.Close()

	state := restored.Load(ctx)
	if len(state.Roommates) != 4 {
		t.Fatalf("Roommates = %d, want 4", len(state.Roommates))
	}
	// 600 / (4 + 1) = 120
	got := state.Roommates[3]
	if got.ID != roommate.ID || got.Balance.String() != "120" || got.Status != models.StatusPay {
		t.Errorf("Restored roommate = %+v", got)
	}
	if len(state.Expenses) != 4 || state.Expenses[0].Title != "Cab" {
		t.Errorf("Restored expenses = %+v", state.Expenses)
	}
	for _, u := range state.Utilities {
		if u.Due != models.DueSettled || !u.Mine.IsZero() {
			t.Errorf("Restored utility not settled: %+v", u)
		}
	}
}
