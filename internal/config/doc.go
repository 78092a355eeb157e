// Package config provides 12-factor configuration management for the wildcard tool.
//
// Configuration is loaded from environment variables with sensible defaults.
// A YAML or TOML file can be layered on top, and CLI flags override both.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Scan: Default exclude patterns and case sensitivity
//   - Archive: Tar compression
//   - Metrics: Prometheus textfile output
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err == nil && path != "" {
//		cfg, err = config.LoadFile(path, cfg)
//	}
//
// Environment Variables:
//   - WILDCARD_LOG_LEVEL, WILDCARD_LOG_DEV
//   - WILDCARD_DEFAULT_EXCLUDES (comma separated), WILDCARD_IGNORE_CASE
//   - WILDCARD_TAR_COMPRESSION, WILDCARD_METRICS_OUT
//
// Example YAML:
//
//	logging:
//	  level: debug
//	scan:
//	  default_excludes: ["**/.git/**", "**/node_modules/**"]
//	archive:
//	  tar_compression: zstd
package config
