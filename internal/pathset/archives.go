package pathset

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/wildcard/internal/monitoring"
	"github.com/google/uuid"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

// Compression selects the stream wrapped around a tar archive.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

// ErrUnknownCompression is returned for an unsupported compression name.
var ErrUnknownCompression = errors.New("unknown compression")

// ParseCompression parses "none", "gzip" or "zstd". An empty string is "none".
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionGzip, CompressionZstd:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// Zip writes the file entries to a zip archive at dest, named by their
// relative paths with "/" separators and deflated at best compression.
// Nothing is written when the collection holds no files.
func (c *Collection) Zip(dest string) error {
	files := c.FilesOnly().Entries()
	if len(files) == 0 {
		return nil
	}

	err := writeAtomic(dest, func(w io.Writer) error {
		return writeZip(w, files)
	})
	c.finishArchive(opZip, dest, len(files), err)
	return err
}

// Tar writes the file entries to a tar archive at dest, optionally wrapped
// in gzip or zstd. Nothing is written when the collection holds no files.
func (c *Collection) Tar(dest string, compression Compression) error {
	if _, err := ParseCompression(string(compression)); err != nil {
		return err
	}

	files := c.FilesOnly().Entries()
	if len(files) == 0 {
		return nil
	}

	err := writeAtomic(dest, func(w io.Writer) error {
		return writeTar(w, files, compression)
	})
	c.finishArchive(opTar, dest, len(files), err)
	return err
}

func (c *Collection) finishArchive(op, dest string, files int, err error) {
	c.session.metrics.RecordBulkOperation(op, monitoring.Status(err))
	if err != nil {
		c.session.logger.Warn("archive failed", zap.String("op", op), zap.String("dest", dest), zap.Error(err))
		return
	}
	c.session.logger.Debug("archive written", zap.String("op", op), zap.String("dest", dest), zap.Int("files", files))
}

// writeAtomic writes to a temporary file next to dest and renames it into
// place. The temporary file is removed on failure.
func writeAtomic(dest string, write func(io.Writer) error) error {
	tmp := filepath.Join(filepath.Dir(dest), "."+uuid.NewString()+".tmp")

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename %s: %w", tmp, err)
	}
	return nil
}

func writeZip(w io.Writer, files []Entry) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	for _, e := range files {
		if err := addZipEntry(zw, e); err != nil {
			zw.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish zip: %w", err)
	}
	return nil
}

func addZipEntry(zw *zip.Writer, e Entry) error {
	file, err := e.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", e.Path(), err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", e.Path(), err)
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.ToSlash(e.Name)
	header.Method = zip.Deflate

	writer, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	if _, err := io.Copy(writer, file); err != nil {
		return fmt.Errorf("failed to compress %s: %w", e.Path(), err)
	}
	return nil
}

func writeTar(w io.Writer, files []Entry, compression Compression) error {
	var stream io.WriteCloser

	switch compression {
	case CompressionGzip:
		stream = gzip.NewWriter(w)
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		stream = zw
	}

	out := w
	if stream != nil {
		out = stream
	}

	tw := tar.NewWriter(out)
	for _, e := range files {
		if err := addTarEntry(tw, e); err != nil {
			tw.Close()
			if stream != nil {
				stream.Close()
			}
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish tar: %w", err)
	}
	if stream != nil {
		if err := stream.Close(); err != nil {
			return fmt.Errorf("failed to finish %s stream: %w", compression, err)
		}
	}
	return nil
}

func addTarEntry(tw *tar.Writer, e Entry) error {
	file, err := e.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", e.Path(), err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", e.Path(), err)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = filepath.ToSlash(e.Name)

	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if _, err := io.Copy(tw, file); err != nil {
		return fmt.Errorf("failed to archive %s: %w", e.Path(), err)
	}
	return nil
}
