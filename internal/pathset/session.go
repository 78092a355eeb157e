package pathset

import (
	"github.com/GriffinCanCode/wildcard/internal/monitoring"
	"go.uber.org/zap"
)

// Session carries the settings shared by the collections it creates. It is
// immutable after NewSession returns and may be used from several goroutines.
type Session struct {
	defaultExcludes []string
	logger          *zap.Logger
	metrics         *monitoring.Metrics
}

// Option configures a Session.
type Option func(*Session)

// WithDefaultExcludes adds exclude patterns applied to every Glob call.
func WithDefaultExcludes(patterns ...string) Option {
	return func(s *Session) {
		for _, p := range patterns {
			if p != "" {
				s.defaultExcludes = append(s.defaultExcludes, p)
			}
		}
	}
}

// WithLogger sets the logger for scans and bulk operations.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records scans and bulk operations on m.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

// NewSession creates a session with the given options.
func NewSession(opts ...Option) *Session {
	s := &Session{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultExcludes returns a copy of the session's default exclude patterns.
func (s *Session) DefaultExcludes() []string {
	return append([]string(nil), s.defaultExcludes...)
}

// New returns an empty collection bound to the session.
func (s *Session) New() *Collection {
	return &Collection{session: s, entries: make(map[Entry]struct{})}
}

// New returns an empty collection with no default excludes.
func New() *Collection {
	return NewSession().New()
}
