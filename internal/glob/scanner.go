package glob

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Stats counts the work done by one scan.
type Stats struct {
	DirsListed     int
	LiteralProbes  int
	UnreadableDirs int
	Excluded       int
}

// Result holds the outcome of a scan.
type Result struct {
	// Root is the canonical absolute scan root.
	Root string
	// Matches are paths relative to Root using the OS separator.
	Matches []string
	Stats   Stats
}

// Scanner walks a directory tree selecting entries by include and exclude patterns.
// The zero value is a case-sensitive scanner that does not log.
type Scanner struct {
	IgnoreCase bool
	Logger     *zap.Logger
}

// Scan is shorthand for Scanner{IgnoreCase: ignoreCase}.Scan.
func Scan(root string, includes, excludes []string, ignoreCase bool) (*Result, error) {
	return Scanner{IgnoreCase: ignoreCase}.Scan(root, includes, excludes)
}

// Scan returns every file and directory under root that satisfies at least
// one include pattern and no exclude pattern. An empty include list selects
// everything. Root errors are reported before anything is read; directories
// that cannot be listed during the walk are treated as empty.
func (s Scanner) Scan(root string, includes, excludes []string) (*Result, error) {
	canonical, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}

	includePatterns := s.compile(includes)
	if len(includePatterns) == 0 {
		includePatterns = []*Pattern{Compile(doubleStar, s.IgnoreCase)}
	}
	excludePatterns := s.compile(excludes)

	w := &walker{
		ignoreCase: s.IgnoreCase,
		logger:     s.logger(),
	}

	cursors := make([]Cursor, len(includePatterns))
	for i, p := range includePatterns {
		cursors[i] = p.Cursor()
	}
	w.scanDir(canonical, "", cursors)

	matches := w.matches
	if len(excludePatterns) > 0 {
		matches, w.stats.Excluded = FilterExcluded(matches, excludePatterns)
	}

	w.logger.Debug("scan complete",
		zap.String("root", canonical),
		zap.Int("includes", len(includePatterns)),
		zap.Int("excludes", len(excludePatterns)),
		zap.Int("matches", len(matches)),
		zap.Int("excluded", w.stats.Excluded),
		zap.Int("dirs_listed", w.stats.DirsListed),
		zap.Int("literal_probes", w.stats.LiteralProbes))

	return &Result{Root: canonical, Matches: matches, Stats: w.stats}, nil
}

func (s Scanner) compile(texts []string) []*Pattern {
	patterns := make([]*Pattern, 0, len(texts))
	for _, text := range texts {
		if text == "" {
			continue
		}
		patterns = append(patterns, Compile(text, s.IgnoreCase))
	}
	return patterns
}

func (s Scanner) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// ResolveRoot validates that root is an existing directory and returns its
// canonical absolute form with symbolic links resolved.
func ResolveRoot(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("%w: root cannot be empty", ErrInvalidRoot)
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: directory does not exist: %s", ErrInvalidRoot, root)
		}
		return "", fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: not a directory: %s", ErrInvalidRoot, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %s: %w", root, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve root %s: %w", root, err)
	}
	return canonical, nil
}

// walker holds the state of one scan. It is discarded when the scan returns.
type walker struct {
	ignoreCase bool
	logger     *zap.Logger
	matches    []string
	stats      Stats
}

// scanDir visits dir (rel relative to the root) with the cursors still alive at this depth.
func (w *walker) scanDir(dir, rel string, cursors []Cursor) {
	if w.allLiteral(cursors) {
		w.probeLiterals(dir, rel, cursors)
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.stats.UnreadableDirs++
		w.logger.Debug("skipping unreadable directory", zap.String("dir", dir), zap.Error(err))
		return
	}
	w.stats.DirsListed++

	for _, entry := range entries {
		name := entry.Name()
		var matching []Cursor
		for _, c := range cursors {
			if c.MatchesSegment(name) {
				matching = append(matching, c)
			}
		}
		if len(matching) == 0 {
			continue
		}
		w.process(dir, rel, name, entry.IsDir(), matching)
	}
}

// allLiteral reports whether the directory can be probed by name instead of listed.
// Case-insensitive scans always list, since the lower-cased name may not exist on disk.
func (w *walker) allLiteral(cursors []Cursor) bool {
	if w.ignoreCase {
		return false
	}
	for _, c := range cursors {
		if !c.IsLiteral() {
			return false
		}
	}
	return true
}

// probeLiterals checks each distinct literal name once, passing along only
// the cursors that expect that name.
func (w *walker) probeLiterals(dir, rel string, cursors []Cursor) {
	var names []string
	groups := make(map[string][]Cursor, len(cursors))
	for _, c := range cursors {
		name, _ := c.Segment()
		if _, seen := groups[name]; !seen {
			names = append(names, name)
		}
		groups[name] = append(groups[name], c)
	}

	for _, name := range names {
		if name == "" || name == "." || name == ".." {
			continue
		}
		w.stats.LiteralProbes++
		info, err := os.Lstat(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		w.process(dir, rel, name, info.IsDir(), groups[name])
	}
}

// process advances the matching cursors over one entry, records it when any
// cursor reaches a final match and descends when cursors remain.
func (w *walker) process(dir, rel, name string, isDir bool, matching []Cursor) {
	final := false
	remaining := make([]Cursor, 0, len(matching))
	for _, c := range matching {
		next, advanced := c.Advance(name)
		if next.IsFinal() {
			final = true
		}
		if advanced && next.IsExhausted() {
			continue
		}
		remaining = append(remaining, next)
	}

	relPath := filepath.Join(rel, name)
	if final {
		w.matches = append(w.matches, relPath)
	}
	if isDir && len(remaining) > 0 {
		w.scanDir(filepath.Join(dir, name), relPath, remaining)
	}
}
