// Package notify delivers household notifications such as nudges, settlement
// confirmations and scheduled reminders to whatever surface is listening.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Kind classifies a Notification.
type Kind string

const (
	KindNudge    Kind = "nudge"
	KindSettled  Kind = "settled"
	KindReminder Kind = "reminder"
)

// Notification is a user-facing message. It never carries state changes.
type Notification struct {
	ID         string    `json:"id"`
	Kind       Kind      `json:"kind"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	RoommateID string    `json:"roommateId,omitempty"`
	At         time.Time `json:"at"`
}

// Notifier accepts notifications. Implementations must not block for long;
// they run after the household mutation has completed and its lock is
// released, so they may read household state.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// LogNotifier writes notifications to the structured log.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, n Notification) {
	slog.InfoContext(ctx, "Notification",
		"kind", n.Kind,
		"title", n.Title,
		"body", n.Body,
		"roommate_id", n.RoommateID,
	)
}

// Multi fans a notification out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, notifier := range m {
		notifier.Notify(ctx, n)
	}
}

// DefaultFeedCapacity is used when NewFeed is given a non-positive capacity.
const DefaultFeedCapacity = 50

// Feed keeps the most recent notifications in memory for the notification
// list view. Oldest entries are dropped once capacity is reached.
type Feed struct {
	mu       sync.Mutex
	capacity int
	items    []Notification // oldest first
}

// NewFeed creates a Feed holding at most capacity notifications.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultFeedCapacity
	}
	return &Feed{capacity: capacity}
}

func (f *Feed) Notify(_ context.Context, n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, n)
	if over := len(f.items) - f.capacity; over > 0 {
		f.items = append(f.items[:0:0], f.items[over:]...)
	}
}

// List returns the stored notifications, newest first.
func (f *Feed) List() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Notification, len(f.items))
	for i, n := range f.items {
		out[len(f.items)-1-i] = n
	}
	return out
}
