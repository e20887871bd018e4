// Package reminder periodically reminds the primary user of what they still
// owe, on a cron schedule.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mmynk/roomease/internal/notify"
)

// Source produces the reminders due right now.
type Source interface {
	Reminders() []notify.Notification
}

// Scheduler delivers the reminders from a Source to a Notifier on a schedule.
type Scheduler struct {
	source   Source
	notifier notify.Notifier
	sent     func(n int)
	cron     *cron.Cron
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithSentCounter registers a callback receiving the number of reminders
// delivered by each run.
func WithSentCounter(fn func(n int)) Option {
	return func(s *Scheduler) { s.sent = fn }
}

// New creates a Scheduler for a standard five-field cron spec. An empty spec
// returns a Scheduler whose Start and Stop do nothing.
func New(spec string, source Source, notifier notify.Notifier, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{source: source, notifier: notifier, sent: func(int) {}}
	for _, opt := range opts {
		opt(s)
	}
	if spec == "" {
		return s, nil
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.RunOnce(ctx)
	}); err != nil {
		return nil, fmt.Errorf("schedule reminders %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the schedule in the background.
func (s *Scheduler) Start() {
	if s.cron == nil {
		slog.Info("Reminders disabled")
		return
	}
	s.cron.Start()
	slog.Info("Reminder scheduler started", "next_run", s.cron.Entries()[0].Next)
}

// Stop halts the schedule and waits for a running job to finish or ctx to
// expire.
func (s *Scheduler) Stop(ctx context.Context) {
	if s.cron == nil {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		slog.Warn("Reminder job still running at shutdown")
	}
}

// RunOnce delivers the current reminders and returns how many were sent.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	reminders := s.source.Reminders()
	for _, n := range reminders {
		if ctx.Err() != nil {
			slog.Warn("Reminder run cancelled", "error", ctx.Err())
			break
		}
		s.notifier.Notify(ctx, n)
	}
	sent := len(reminders)
	if ctx.Err() != nil {
		sent = 0
	}
	s.sent(sent)
	slog.Debug("Reminders sent", "count", sent)
	return sent
}
