// Package pathset collects file system entries selected by glob or regular
// expression patterns and runs bulk operations over them.
//
// A Collection is a set of (root, relative name) pairs. Entries selected
// from different roots can live in the same collection, and selecting the
// same entry twice keeps one copy. Settings shared between collections,
// such as default exclude patterns, a logger and metrics, belong to the
// Session that created them.
//
// Pattern Syntax:
//   - "*" and "?" match within one path element
//   - "**" matches any number of path elements
//   - a leading "!" turns a pattern into an exclude
//   - "dir|pattern|pattern" selects dir and patterns in one string
//
// Bulk Operations:
//   - CopyTo: copy entries to a new root, cleaning up on failure
//   - Delete: best-effort removal, deepest entries first
//   - Zip, Tar: archive the file entries under their relative names
//
// Example Usage:
//
//	session := pathset.NewSession(pathset.WithDefaultExcludes("**/.git/**"))
//	sources := session.New()
//	if err := sources.Glob("src", "**/*.go", "!**/*_test.go"); err != nil {
//		return err
//	}
//	if err := sources.Zip("sources.zip"); err != nil {
//		return err
//	}
package pathset
