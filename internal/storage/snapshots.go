package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/roomease/internal/models"
)

// ResultRecorder observes the outcome of every collection write.
type ResultRecorder interface {
	PersistResult(collection string, err error)
}

type nopRecorder struct{}

func (nopRecorder) PersistResult(string, error) {}

// Snapshots loads and saves whole household collections. Load never fails:
// anything missing or unusable is replaced by seed data. Saves are queued
// and applied in order on a background writer; failures are logged and
// dropped.
type Snapshots struct {
	kv     KV
	writer *writer
}

// SnapshotsOption configures Snapshots.
type SnapshotsOption func(*snapshotsConfig)

type snapshotsConfig struct {
	recorder ResultRecorder
}

// WithResultRecorder reports each write outcome, e.g. to metrics.
func WithResultRecorder(r ResultRecorder) SnapshotsOption {
	return func(c *snapshotsConfig) { c.recorder = r }
}

// NewSnapshots creates the persistence adapter over kv and starts its writer.
func NewSnapshots(kv KV, opts ...SnapshotsOption) *Snapshots {
	cfg := snapshotsConfig{recorder: nopRecorder{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Snapshots{
		kv:     kv,
		writer: newWriter(kv, cfg.recorder),
	}
}

// Load reads all three collections, falling back to seed data per
// collection.
func (s *Snapshots) Load(ctx context.Context) models.State {
	return models.State{
		Roommates: loadCollection(ctx, s.kv, CollectionRoommates, models.SeedRoommates, models.Roommate.Validate),
		Expenses:  loadCollection(ctx, s.kv, CollectionExpenses, models.SeedExpenses, models.Expense.Validate),
		Utilities: loadCollection(ctx, s.kv, CollectionUtilities, models.SeedUtilities, models.Utility.Validate),
	}
}

func loadCollection[T any](ctx context.Context, kv KV, c Collection, seed func() []T, validate func(T) error) []T {
	items, err := readCollection(ctx, kv, c, validate)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			slog.InfoContext(ctx, "No stored collection, using seed data", "collection", c)
		} else {
			slog.WarnContext(ctx, "Stored collection unusable, using seed data", "collection", c, "error", err)
		}
		return seed()
	}
	slog.DebugContext(ctx, "Collection loaded", "collection", c, "count", len(items))
	return items
}

func readCollection[T any](ctx context.Context, kv KV, c Collection, validate func(T) error) ([]T, error) {
	data, err := kv.Get(ctx, Key(c))
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c, err)
	}
	if items == nil {
		return nil, fmt.Errorf("stored %s is not a list", c)
	}
	for i, item := range items {
		if err := validate(item); err != nil {
			return nil, fmt.Errorf("stored %s[%d]: %w", c, i, err)
		}
	}
	return items, nil
}

// RoommatesChanged queues a write of the roommate collection.
func (s *Snapshots) RoommatesChanged(ctx context.Context, roommates []models.Roommate) {
	s.save(ctx, CollectionRoommates, roommates)
}

// ExpensesChanged queues a write of the expense collection.
func (s *Snapshots) ExpensesChanged(ctx context.Context, expenses []models.Expense) {
	s.save(ctx, CollectionExpenses, expenses)
}

// UtilitiesChanged queues a write of the utility collection.
func (s *Snapshots) UtilitiesChanged(ctx context.Context, utilities []models.Utility) {
	s.save(ctx, CollectionUtilities, utilities)
}

func (s *Snapshots) save(ctx context.Context, c Collection, items any) {
	payload, err := json.Marshal(items)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode collection", "collection", c, "error", err)
		return
	}
	s.writer.enqueue(c, payload)
}

// Flush blocks until all queued writes have been applied.
func (s *Snapshots) Flush(ctx context.Context) error {
	return s.writer.flush(ctx)
}

// Close drains queued writes and stops the writer. It does not close the
// underlying KV.
func (s *Snapshots) Close() {
	s.writer.close()
}
