package pathset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/GriffinCanCode/wildcard/internal/glob"
	"github.com/GriffinCanCode/wildcard/internal/monitoring"
	"go.uber.org/zap"
)

// Collection is an unordered set of entries. Query methods return results
// sorted by absolute path. A Collection is not safe for concurrent mutation.
type Collection struct {
	session *Session
	entries map[Entry]struct{}
}

// Glob adds the entries under dir matched by patterns. Patterns starting
// with "!" are excludes; the session's default excludes are always applied.
// With no patterns, dir is split on "|" and the remaining elements are used
// as patterns. A dir that does not exist adds nothing.
func (c *Collection) Glob(dir string, patterns ...string) error {
	return c.glob(dir, false, patterns)
}

// GlobIgnoreCase is Glob with case-insensitive matching.
func (c *Collection) GlobIgnoreCase(dir string, patterns ...string) error {
	return c.glob(dir, true, patterns)
}

func (c *Collection) glob(dir string, ignoreCase bool, patterns []string) error {
	dir, patterns = splitDir(dir, patterns)
	if !exists(dir) {
		return nil
	}

	includes, excludes := splitPatterns(patterns)
	excludes = append(excludes, c.session.defaultExcludes...)

	scanner := glob.Scanner{IgnoreCase: ignoreCase, Logger: c.session.logger}
	timer := monitoring.NewTimer(c.session.metrics, monitoring.ModeGlob)
	res, err := scanner.Scan(dir, includes, excludes)
	c.finishScan(monitoring.ModeGlob, dir, timer, res, err, len(includes), len(excludes))
	if err != nil {
		return err
	}

	c.addResult(res)
	return nil
}

// Regex adds the entries under dir whose slash-separated relative path fully
// matches one of the regular expressions. Expressions starting with "!" are
// excludes. Default glob excludes do not apply. dir is treated as in Glob.
func (c *Collection) Regex(dir string, patterns ...string) error {
	dir, patterns = splitDir(dir, patterns)
	if !exists(dir) {
		return nil
	}

	includes, excludes := splitPatterns(patterns)

	scanner := glob.RegexScanner{Logger: c.session.logger}
	timer := monitoring.NewTimer(c.session.metrics, monitoring.ModeRegex)
	res, err := scanner.Scan(dir, includes, excludes)
	c.finishScan(monitoring.ModeRegex, dir, timer, res, err, len(includes), len(excludes))
	if err != nil {
		return err
	}

	c.addResult(res)
	return nil
}

func (c *Collection) finishScan(mode, dir string, timer *monitoring.Timer, res *glob.Result, err error, includes, excludes int) {
	var stats monitoring.WalkStats
	if res != nil {
		stats = monitoring.WalkStats{
			Matched:        len(res.Matches),
			Excluded:       res.Stats.Excluded,
			DirsListed:     res.Stats.DirsListed,
			LiteralProbes:  res.Stats.LiteralProbes,
			UnreadableDirs: res.Stats.UnreadableDirs,
		}
	}
	elapsed := timer.Stop(monitoring.Status(err), stats)

	if err != nil {
		c.session.logger.Debug("scan failed",
			zap.String("mode", mode),
			zap.String("dir", dir),
			zap.Error(err))
		return
	}
	c.session.logger.Debug("scan added entries",
		zap.String("mode", mode),
		zap.String("root", res.Root),
		zap.Int("includes", includes),
		zap.Int("excludes", excludes),
		zap.Int("matches", stats.Matched),
		zap.Duration("duration", elapsed))
}

func (c *Collection) addResult(res *glob.Result) {
	for _, name := range res.Matches {
		c.entries[newEntry(res.Root, name)] = struct{}{}
	}
}

// splitDir applies the defaults for an empty dir and the "dir|pattern|..." form.
func splitDir(dir string, patterns []string) (string, []string) {
	if dir == "" {
		dir = "."
	}
	if len(patterns) == 0 {
		if parts := strings.Split(dir, "|"); len(parts) > 1 {
			dir, patterns = parts[0], parts[1:]
		}
	}
	return dir, patterns
}

// splitPatterns separates "!"-prefixed excludes from includes. Empty patterns are ignored.
func splitPatterns(patterns []string) (includes, excludes []string) {
	for _, p := range patterns {
		switch {
		case p == "":
		case strings.HasPrefix(p, "!"):
			excludes = append(excludes, p[1:])
		default:
			includes = append(includes, p)
		}
	}
	return includes, excludes
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// Add adds the entry name under dir. "/data" and "/data/" name the same root.
func (c *Collection) Add(dir, name string) *Collection {
	c.entries[newEntry(dir, name)] = struct{}{}
	return c
}

// AddFile adds fullPath as an entry of its parent directory.
func (c *Collection) AddFile(fullPath string) *Collection {
	return c.Add(filepath.Dir(fullPath), filepath.Base(fullPath))
}

// Union adds every entry of other.
func (c *Collection) Union(other *Collection) *Collection {
	for e := range other.entries {
		c.entries[e] = struct{}{}
	}
	return c
}

// Contains reports whether the collection holds e. e.Dir need not end with a separator.
func (c *Collection) Contains(e Entry) bool {
	_, ok := c.entries[newEntry(e.Dir, e.Name)]
	return ok
}

// FilesOnly returns the entries that are regular files.
func (c *Collection) FilesOnly() *Collection {
	return c.filter(Entry.isFile)
}

// DirsOnly returns the entries that are directories.
func (c *Collection) DirsOnly() *Collection {
	return c.filter(Entry.isDir)
}

// Flatten returns the file entries re-rooted at their parent directory, as
// if each had been selected on its own.
func (c *Collection) Flatten() *Collection {
	out := c.session.New()
	for e := range c.entries {
		if e.isFile() {
			out.AddFile(e.Path())
		}
	}
	return out
}

func (c *Collection) filter(keep func(Entry) bool) *Collection {
	out := c.session.New()
	for e := range c.entries {
		if keep(e) {
			out.entries[e] = struct{}{}
		}
	}
	return out
}

// Count returns the number of entries.
func (c *Collection) Count() int {
	return len(c.entries)
}

// IsEmpty reports whether the collection has no entries.
func (c *Collection) IsEmpty() bool {
	return len(c.entries) == 0
}

// Entries returns the entries sorted by absolute path.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].Path(), out[j].Path()
		if pi != pj {
			return pi < pj
		}
		return out[i].Dir < out[j].Dir
	})
	return out
}

// Paths returns the absolute paths.
func (c *Collection) Paths() []string {
	return c.collect(Entry.Path)
}

// RelativePaths returns each entry's name relative to its root.
func (c *Collection) RelativePaths() []string {
	return c.collect(func(e Entry) string { return e.Name })
}

// Names returns the final element of each entry.
func (c *Collection) Names() []string {
	return c.collect(Entry.Base)
}

func (c *Collection) collect(fn func(Entry) string) []string {
	entries := c.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = fn(e)
	}
	return out
}

// Join returns the absolute paths separated by delim.
func (c *Collection) Join(delim string) string {
	return strings.Join(c.Paths(), delim)
}

// String returns the absolute paths separated by ", ".
func (c *Collection) String() string {
	return c.Join(", ")
}
