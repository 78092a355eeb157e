package monitoring

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordScan(t *testing.T) {
	m := NewMetrics()

	m.RecordScan(ModeGlob, "success", 10*time.Millisecond, WalkStats{
		Matched:        5,
		Excluded:       2,
		DirsListed:     3,
		LiteralProbes:  4,
		UnreadableDirs: 1,
	})
	m.RecordScan(ModeRegex, "error", time.Millisecond, WalkStats{})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScansTotal.WithLabelValues(ModeGlob, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScansTotal.WithLabelValues(ModeRegex, "error")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.EntriesMatched.WithLabelValues(ModeGlob)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EntriesExcluded))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.DirsListed))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.LiteralProbes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UnreadableDirs))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ScanDuration))
}

func TestBulkOperations(t *testing.T) {
	m := NewMetrics()

	m.RecordBulkOperation("delete", "success")
	m.RecordBulkOperation("delete", "success")
	m.RecordBulkOperation("zip", "error")
	m.IncDeleteFailures()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BulkOperations.WithLabelValues("delete", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BulkOperations.WithLabelValues("zip", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DeleteFailures))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordScan(ModeGlob, "success", time.Second, WalkStats{Matched: 1})
		m.RecordBulkOperation("copy", "success")
		m.IncDeleteFailures()
		NewTimer(nil, ModeGlob).Stop("success", WalkStats{})
	})
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	assert.NotSame(t, a.Registry(), b.Registry())

	a.RecordBulkOperation("copy", "success")
	assert.Equal(t, 0.0, testutil.ToFloat64(b.BulkOperations.WithLabelValues("copy", "success")))
}

func TestTimer(t *testing.T) {
	m := NewMetrics()

	timer := NewTimer(m, ModeGlob)
	elapsed := timer.Stop("success", WalkStats{Matched: 2})

	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScansTotal.WithLabelValues(ModeGlob, "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EntriesMatched.WithLabelValues(ModeGlob)))
}

func TestWriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RecordBulkOperation("tar", "success")

	path := filepath.Join(t.TempDir(), "wildcard.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `wildcard_bulk_operations_total{op="tar",status="success"} 1`))
	assert.Contains(t, text, "# TYPE wildcard_delete_failures_total counter")
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "success", Status(nil))
	assert.Equal(t, "error", Status(errors.New("boom")))
}
