package glob

import "errors"

// Sentinel errors for scan operations.
var (
	// ErrInvalidRoot indicates a scan root that is empty, missing or not a directory.
	ErrInvalidRoot = errors.New("invalid scan root")
	// ErrInvalidPattern indicates a regular expression that does not compile.
	// Glob patterns always compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)
