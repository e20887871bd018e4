// Package household owns the live household state and applies every change
// to it: recording expenses, inviting and settling roommates, and settling
// utilities.
//
// All mutations are serialized by one mutex and run to completion. After a
// successful mutation the Observer sees the full updated collection while
// the lock is still held, so observers receive changes in the order they
// happened.
package household

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/roomease/internal/calculator"
	"github.com/mmynk/roomease/internal/models"
	"github.com/mmynk/roomease/internal/notify"
)

var (
	// ErrRoommateNotFound is returned for an ID that is not in the roommate
	// collection.
	ErrRoommateNotFound = errors.New("roommate not found")

	// ErrNotPayable is returned when settling a roommate whose status is not Pay.
	ErrNotPayable = errors.New("roommate has nothing to settle")

	// ErrNotNudgeable is returned when nudging a roommate whose status is not
	// FriendlyNudge.
	ErrNotNudgeable = errors.New("roommate does not owe anything")
)

// Observer is told about every collection change. Snapshots passed in are
// copies owned by the observer.
type Observer interface {
	RoommatesChanged(ctx context.Context, roommates []models.Roommate)
	ExpensesChanged(ctx context.Context, expenses []models.Expense)
	UtilitiesChanged(ctx context.Context, utilities []models.Utility)
}

type nopObserver struct{}

func (nopObserver) RoommatesChanged(context.Context, []models.Roommate) {}
func (nopObserver) ExpensesChanged(context.Context, []models.Expense)   {}
func (nopObserver) UtilitiesChanged(context.Context, []models.Utility)  {}

// Household is the single application-state container.
type Household struct {
	mu        sync.Mutex
	roommates []models.Roommate
	expenses  []models.Expense
	utilities []models.Utility

	observer Observer
	notifier notify.Notifier
	newID    func() string
	now      func() time.Time
}

// Option configures a Household.
type Option func(*Household)

// WithObserver installs the persistence hook.
func WithObserver(o Observer) Option {
	return func(h *Household) { h.observer = o }
}

// WithNotifier sets where nudges and settlement confirmations go.
func WithNotifier(n notify.Notifier) Option {
	return func(h *Household) { h.notifier = n }
}

// WithIDGenerator overrides UUID generation, mainly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(h *Household) { h.newID = fn }
}

// WithClock overrides the time source used for notification timestamps.
func WithClock(fn func() time.Time) Option {
	return func(h *Household) { h.now = fn }
}

// New creates a Household starting from the given snapshot.
func New(initial models.State, opts ...Option) *Household {
	state := initial.Clone()
	h := &Household{
		roommates: state.Roommates,
		expenses:  state.Expenses,
		utilities: state.Utilities,
		observer:  nopObserver{},
		notifier:  notify.LogNotifier{},
		newID:     func() string { return uuid.New().String() },
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Roommates returns the roommates in insertion order.
func (h *Household) Roommates() []models.Roommate {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.Roommate(nil), h.roommates...)
}

// Expenses returns the expenses, newest first.
func (h *Household) Expenses() []models.Expense {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.Expense(nil), h.expenses...)
}

// Utilities returns the utilities in display order.
func (h *Household) Utilities() []models.Utility {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.Utility(nil), h.utilities...)
}

// State returns a copy of all three collections taken atomically.
func (h *Household) State() models.State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

// Summary recomputes the report aggregates from the current state.
func (h *Household) Summary() calculator.Summary {
	return calculator.Summarize(h.State())
}

func (h *Household) snapshotLocked() models.State {
	return models.State{
		Roommates: h.roommates,
		Expenses:  h.expenses,
		Utilities: h.utilities,
	}.Clone()
}

func (h *Household) indexLocked(id string) (int, error) {
	for i, r := range h.roommates {
		if r.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrRoommateNotFound, id)
}

func (h *Household) roommatesChangedLocked(ctx context.Context) {
	h.observer.RoommatesChanged(ctx, append([]models.Roommate(nil), h.roommates...))
}

func (h *Household) expensesChangedLocked(ctx context.Context) {
	h.observer.ExpensesChanged(ctx, append([]models.Expense(nil), h.expenses...))
}

func (h *Household) utilitiesChangedLocked(ctx context.Context) {
	h.observer.UtilitiesChanged(ctx, append([]models.Utility(nil), h.utilities...))
}

func (h *Household) notification(kind notify.Kind, roommateID, title, body string) notify.Notification {
	return notify.Notification{
		ID:         h.newID(),
		Kind:       kind,
		Title:      title,
		Body:       body,
		RoommateID: roommateID,
		At:         h.now(),
	}
}
