package glob

import (
	"path/filepath"
	"strings"
)

// outcome is the verdict of one exclude step.
type outcome int

const (
	keepChecking outcome = iota
	excluded
	survives
)

// FilterExcluded drops every path matched by one of the exclude patterns.
// Paths are relative and use the OS separator. It returns the kept paths and
// the number of dropped ones.
func FilterExcluded(paths []string, excludes []*Pattern) ([]string, int) {
	if len(excludes) == 0 {
		return paths, 0
	}

	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		if IsExcluded(path, excludes) {
			continue
		}
		kept = append(kept, path)
	}
	return kept, len(paths) - len(kept)
}

// IsExcluded reports whether any exclude pattern matches path or one of its ancestors.
//
// Patterns shaped "**/X" are decided by comparing X with the individual names
// of the path, starting with the base name. All other patterns are walked
// segment by segment from fresh cursors.
func IsExcluded(path string, excludes []*Pattern) bool {
	names := strings.Split(path, string(filepath.Separator))

	active := make([]Cursor, 0, len(excludes))
	for _, p := range excludes {
		c := p.Cursor()
		if p.isAnyDepthName() {
			if anyNameMatches(c, names) {
				return true
			}
			continue
		}
		active = append(active, c)
	}
	if len(active) == 0 {
		return false
	}

	for _, name := range names {
		var verdict outcome
		active, verdict = stepExcludes(active, name)
		switch verdict {
		case excluded:
			return true
		case survives:
			return false
		}
	}
	return false
}

// anyNameMatches decides a "**/X" pattern: the base name is checked first,
// then the ancestors, since an excluded directory takes its contents with it.
func anyNameMatches(c Cursor, names []string) bool {
	name := Cursor{pattern: c.pattern, index: 1}
	for i := len(names) - 1; i >= 0; i-- {
		if name.MatchesSegment(names[i]) {
			return true
		}
	}
	return false
}

// stepExcludes feeds one path segment to the active exclude cursors.
// Cursors that do not match the segment drop out; a cursor reaching a final
// match excludes the path; no cursors left means the path survives.
func stepExcludes(active []Cursor, name string) ([]Cursor, outcome) {
	next := make([]Cursor, 0, len(active))
	for _, c := range active {
		if !c.MatchesSegment(name) {
			continue
		}
		advanced, _ := c.Advance(name)
		if advanced.IsFinal() {
			return nil, excluded
		}
		next = append(next, advanced)
	}
	if len(next) == 0 {
		return nil, survives
	}
	return next, keepChecking
}
