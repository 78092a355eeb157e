package pathset

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one selected path: the root it was selected from and its name
// relative to that root. Dir is cleaned and ends with a separator, so two
// entries naming the same root and name are equal.
type Entry struct {
	Dir  string
	Name string
}

func newEntry(dir, name string) Entry {
	return Entry{Dir: normalizeDir(dir), Name: filepath.Clean(name)}
}

func normalizeDir(dir string) string {
	dir = filepath.Clean(dir)
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return dir
}

// Path returns the absolute path of the entry.
func (e Entry) Path() string {
	return filepath.Join(e.Dir, e.Name)
}

// Base returns the final element of the entry's name.
func (e Entry) Base() string {
	return filepath.Base(e.Name)
}

// Stat follows symlinks, like the views and operations do.
func (e Entry) Stat() (fs.FileInfo, error) {
	return os.Stat(e.Path())
}

// Open opens the entry for reading.
func (e Entry) Open() (*os.File, error) {
	return os.Open(e.Path())
}

func (e Entry) isDir() bool {
	info, err := e.Stat()
	return err == nil && info.IsDir()
}

func (e Entry) isFile() bool {
	info, err := e.Stat()
	return err == nil && info.Mode().IsRegular()
}

func (e Entry) String() string {
	return e.Path()
}
