// Package logging provides structured logging using uber/zap.
//
// This package offers two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Output defaults to stderr; stdout belongs to command output.
//
// Example Usage:
//
//	logger, err := logging.New(logging.ForMode(cfg.Logging.Development, cfg.Logging.Level))
//	logger.Info("scan complete", zap.String("root", root))
//	logger.Error("copy failed", zap.Error(err))
package logging
