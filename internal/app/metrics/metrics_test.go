package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.RunStarted()
	m.RunStarted()
	m.RunFinished(OutcomeCompleted, 2*time.Second)
	m.RunFinished(OutcomeDiscarded, time.Second)
	m.Exported("pdf")
	m.SetHistorySize(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(OutcomeCompleted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(OutcomeDiscarded)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.runs.WithLabelValues(OutcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("pdf")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.history))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RunStarted()
		m.RunFinished(OutcomeFailed, time.Second)
		m.Exported("txt")
		m.SetHistorySize(1)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.Exported("docx")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `verbaflow_exports_total{format="docx"} 1`)
}
