package glob

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"sync"

	"github.com/charlievieth/fastwalk"
	"go.uber.org/zap"
)

// RegexScanner selects entries by matching regular expressions against their
// slash-separated path relative to the root. Unlike Scanner it visits every
// entry of the tree.
type RegexScanner struct {
	Logger *zap.Logger
}

// ScanRegex is shorthand for RegexScanner{}.Scan.
func ScanRegex(root string, includes, excludes []string) (*Result, error) {
	return RegexScanner{}.Scan(root, includes, excludes)
}

// Scan returns the entries whose relative path fully matches at least one
// include expression and no exclude expression. An empty include list selects everything.
func (s RegexScanner) Scan(root string, includes, excludes []string) (*Result, error) {
	canonical, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}

	if len(includes) == 0 {
		includes = []string{".*"}
	}
	includeExprs, err := compileRegexps(includes)
	if err != nil {
		return nil, err
	}
	excludeExprs, err := compileRegexps(excludes)
	if err != nil {
		return nil, err
	}

	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		mu      sync.Mutex
		matches []string
		stats   Stats
	)
	conf := fastwalk.Config{Follow: false, NumWorkers: 1}

	err = fastwalk.Walk(&conf, canonical, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			mu.Lock()
			stats.UnreadableDirs++
			mu.Unlock()
			logger.Debug("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == canonical {
			return nil
		}

		rel, err := filepath.Rel(canonical, path)
		if err != nil {
			return nil
		}
		slashed := filepath.ToSlash(rel)

		mu.Lock()
		defer mu.Unlock()
		if d.IsDir() {
			stats.DirsListed++
		}
		if !anyRegexp(includeExprs, slashed) {
			return nil
		}
		if anyRegexp(excludeExprs, slashed) {
			stats.Excluded++
			return nil
		}
		matches = append(matches, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", canonical, err)
	}

	sort.Strings(matches)
	logger.Debug("regex scan complete",
		zap.String("root", canonical),
		zap.Int("matches", len(matches)),
		zap.Int("excluded", stats.Excluded))

	return &Result{Root: canonical, Matches: matches, Stats: stats}, nil
}

// compileRegexps anchors and compiles each expression.
func compileRegexps(exprs []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, expr, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func anyRegexp(exprs []*regexp.Regexp, path string) bool {
	for _, re := range exprs {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
