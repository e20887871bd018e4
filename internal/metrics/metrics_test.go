package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/roomease/internal/calculator"
	"github.com/mmynk/roomease/internal/models"
)

func TestPersistResult(t *testing.T) {
	m := New()
	m.PersistResult("roommates", nil)
	m.PersistResult("roommates", nil)
	m.PersistResult("expenses", errors.New("disk full"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PersistWrites.WithLabelValues("roommates", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PersistWrites.WithLabelValues("expenses", "error")))
}

func TestSummaryGauges(t *testing.T) {
	m := New()
	m.RegisterSummary(func() calculator.Summary { return calculator.Summarize(models.Seed()) })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	for _, line := range []string{
		"roomease_total_spent_rupees 3750",
		"roomease_user_owes_rupees 120",
		"roomease_user_is_owed_rupees 450",
		"roomease_utility_due_rupees 1725",
	} {
		assert.True(t, strings.Contains(text, line), "missing %q", line)
	}
}
