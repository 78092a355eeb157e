package pathset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/GriffinCanCode/wildcard/internal/monitoring"
	"go.uber.org/zap"
)

// Bulk operation names used in logs and metrics.
const (
	opCopy   = "copy"
	opDelete = "delete"
	opZip    = "zip"
	opTar    = "tar"
)

// CopyTo copies every entry to destDir under its relative name. Directories
// are created, files are copied with their permission bits. It returns the
// copied entries rooted at destDir. On failure the files written by this call
// are removed and nil is returned with the error.
func (c *Collection) CopyTo(destDir string) (*Collection, error) {
	out, err := c.copyTo(destDir)
	c.session.metrics.RecordBulkOperation(opCopy, monitoring.Status(err))
	if err != nil {
		c.session.logger.Warn("copy failed", zap.String("dest", destDir), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (c *Collection) copyTo(destDir string) (*Collection, error) {
	out := c.session.New()
	var written []string

	cleanup := func() {
		for _, path := range written {
			_ = os.Remove(path)
		}
	}

	for _, e := range c.Entries() {
		src := e.Path()
		dest := filepath.Join(destDir, e.Name)

		info, err := os.Stat(src)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to stat %s: %w", src, err)
		}

		if info.IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				cleanup()
				return nil, fmt.Errorf("failed to create %s: %w", dest, err)
			}
		} else {
			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				cleanup()
				return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
			}
			created, err := copyFile(src, dest, info.Mode().Perm())
			if created {
				written = append(written, dest)
			}
			if err != nil {
				cleanup()
				return nil, fmt.Errorf("failed to copy %s: %w", src, err)
			}
		}

		out.Add(destDir, e.Name)
	}

	return out, nil
}

// copyFile reports whether dst was created, even when the copy then failed.
func copyFile(src, dst string, perm fs.FileMode) (bool, error) {
	in, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return false, err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return true, err
	}
	return true, out.Close()
}

// Delete removes every entry, deepest paths first. Directories are removed
// with their contents. Entries that are already gone count as removed. It
// keeps going after a failure and returns false if anything could not be
// removed.
func (c *Collection) Delete() bool {
	paths := c.Paths()
	sort.SliceStable(paths, func(i, j int) bool {
		return len(paths[i]) > len(paths[j])
	})

	ok := true
	for _, path := range paths {
		if err := removeEntry(path); err != nil {
			ok = false
			c.session.metrics.IncDeleteFailures()
			c.session.logger.Warn("delete failed", zap.String("path", path), zap.Error(err))
		}
	}

	status := "success"
	if !ok {
		status = "error"
	}
	c.session.metrics.RecordBulkOperation(opDelete, status)
	return ok
}

func removeEntry(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return os.RemoveAll(path)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
