// Package assistant answers household questions with canned suggestions.
// There is no model behind it: a reply is picked at random after a short
// typing delay.
package assistant

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// FallbackReply is returned when no canned reply is configured.
const FallbackReply = "I'm here to help! Feel free to ask anything about managing shared expenses."

// DefaultDelay is the simulated typing time.
const DefaultDelay = time.Second

// ErrEmptyMessage is returned for blank questions.
var ErrEmptyMessage = errors.New("message is empty")

// DefaultReplies is the built-in reply pool.
func DefaultReplies() []string {
	return []string{
		"That sounds like a great idea! Have you discussed it with your roommates?",
		"You could split that expense equally or based on usage.",
		"Setting reminders can help keep track of shared bills.",
		"Communication is key to avoiding conflicts!",
		"Consider creating a shared budget for better planning.",
	}
}

type Assistant struct {
	delay   time.Duration
	replies []string

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Assistant.
type Option func(*Assistant)

func WithDelay(d time.Duration) Option {
	return func(a *Assistant) { a.delay = d }
}

func WithReplies(replies []string) Option {
	return func(a *Assistant) { a.replies = replies }
}

// WithRand makes reply selection deterministic.
func WithRand(r *rand.Rand) Option {
	return func(a *Assistant) { a.rng = r }
}

func New(opts ...Option) *Assistant {
	a := &Assistant{
		delay:   DefaultDelay,
		replies: DefaultReplies(),
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ask waits for the typing delay and returns a reply. It returns ctx.Err()
// if ctx is done first.
func (a *Assistant) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	if a.delay > 0 {
		timer := time.NewTimer(a.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	reply := a.pick()
	slog.DebugContext(ctx, "Assistant replied", "question_len", len(message))
	return reply, nil
}

func (a *Assistant) pick() string {
	if len(a.replies) == 0 {
		return FallbackReply
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.replies[a.rng.IntN(len(a.replies))]
}
