package monitoring

import "time"

// Timer measures scan duration
type Timer struct {
	start   time.Time
	metrics *Metrics
	mode    string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, mode string) *Timer {
	return &Timer{
		start:   time.Now(),
		metrics: metrics,
		mode:    mode,
	}
}

// Stop stops the timer and records the scan
func (t *Timer) Stop(status string, stats WalkStats) time.Duration {
	duration := time.Since(t.start)
	t.metrics.RecordScan(t.mode, status, duration, stats)
	return duration
}
