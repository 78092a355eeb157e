// Package glob implements Ant-style wildcard scanning of a directory tree.
//
// Patterns use three wildcards:
//   - ?: exactly one character of a path segment
//   - *: any run of characters within a single path segment
//   - **: any number of path segments, including none
//
// Include patterns drive a single depth-first walk. Every pattern is
// represented by an immutable Cursor that steps forward as the walk descends,
// so many patterns share one traversal and a directory is only listed when at
// least one active pattern needs a wildcard at that depth. Exclude patterns
// are applied to the collected matches afterwards.
//
// Example Usage:
//
//	res, err := glob.Scan("/src/project", []string{"**/*.go"}, []string{"vendor/**"}, false)
//	if err != nil {
//		return err
//	}
//	for _, rel := range res.Matches {
//		fmt.Println(rel)
//	}
package glob
