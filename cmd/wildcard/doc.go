// Package main is the entry point for the wildcard command line tool.
//
// Wildcard selects files and directories with Ant-style glob patterns or
// regular expressions and lists, copies, deletes or archives them.
//
// Configuration:
//   - Environment variables (WILDCARD_*)
//   - --config file (YAML or TOML, overrides env vars)
//   - CLI flags (override both)
//
// Usage:
//
//	# List Go sources except tests
//	wildcard list src "**/*.go" "!**/*_test.go"
//
//	# Archive documentation, compressed with zstd
//	wildcard tar docs docs.tar.zst "**/*.md" --compression zstd
//
//	# Preview a cleanup, then run it
//	wildcard delete . "**/*.orig" --dry-run
//	wildcard delete . "**/*.orig"
package main
