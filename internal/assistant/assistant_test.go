package assistant

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskReturnsCannedReply(t *testing.T) {
	a := New(WithDelay(0), WithRand(rand.New(rand.NewPCG(1, 2))))

	reply, err := a.Ask(context.Background(), "How do we split the electricity bill?")
	require.NoError(t, err)
	assert.Contains(t, DefaultReplies(), reply)
}

func TestAskIsDeterministicWithSeed(t *testing.T) {
	ask := func() []string {
		a := New(WithDelay(0), WithRand(rand.New(rand.NewPCG(7, 7))))
		var out []string
		for range 5 {
			r, err := a.Ask(context.Background(), "hi")
			require.NoError(t, err)
			out = append(out, r)
		}
		return out
	}
	assert.Equal(t, ask(), ask())
}

func TestAskRejectsBlankMessage(t *testing.T) {
	a := New(WithDelay(0))
	_, err := a.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestAskFallsBackWithoutReplies(t *testing.T) {
	a := New(WithDelay(0), WithReplies(nil))
	reply, err := a.Ask(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestAskHonoursCancellation(t *testing.T) {
	a := New(WithDelay(time.Hour))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := a.Ask(ctx, "still there?")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestAskWaitsForDelay(t *testing.T) {
	a := New(WithDelay(20 * time.Millisecond))
	start := time.Now()
	_, err := a.Ask(context.Background(), "hello")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
