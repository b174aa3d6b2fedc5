package fs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/zerr"
)

// StreamBufferSize is the chunk size used by CopyStream.
const StreamBufferSize = 1024

// Copier copies and moves files.
type Copier struct {
	fs afero.Fs
}

// NewCopier creates a new Copier.
func NewCopier(fs afero.Fs) *Copier {
	return &Copier{fs: fs}
}

// CopyFile copies src to dst byte for byte, creating dst's directory and
// truncating an existing dst. It returns the number of bytes copied.
func (c *Copier) CopyFile(src, dst string) (int64, error) {
	if err := c.checkDistinct(src, dst); err != nil {
		return 0, copyError(err, src, dst)
	}
	in, err := c.fs.Open(src)
	if err != nil {
		return 0, copyError(err, src, dst)
	}
	defer in.Close() //nolint:errcheck // read-only

	out, err := c.create(dst)
	if err != nil {
		return 0, copyError(err, src, dst)
	}

	n, err := CopyStream(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, copyError(err, src, dst)
	}
	return n, nil
}

// CopyFileLines copies src to dst one line at a time. Line endings are
// normalized to "\n" and a final unterminated line gets one.
func (c *Copier) CopyFileLines(src, dst string) (int, error) {
	if err := c.checkDistinct(src, dst); err != nil {
		return 0, copyError(err, src, dst)
	}
	in, err := c.fs.Open(src)
	if err != nil {
		return 0, copyError(err, src, dst)
	}
	defer in.Close() //nolint:errcheck // read-only

	out, err := c.create(dst)
	if err != nil {
		return 0, copyError(err, src, dst)
	}

	n, err := CopyLines(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return n, copyError(err, src, dst)
	}
	return n, nil
}

// MoveFile renames src to dst. When a rename is not possible, for example
// across devices, the file is copied and the source removed.
func (c *Copier) MoveFile(src, dst string) (int64, error) {
	info, err := c.fs.Stat(src)
	if err != nil {
		return 0, moveError(err, src, dst)
	}
	if err := c.fs.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return 0, moveError(err, src, dst)
	}
	if err := c.fs.Rename(src, dst); err == nil {
		return info.Size(), nil
	}

	n, err := c.CopyFile(src, dst)
	if err != nil {
		return 0, moveError(err, src, dst)
	}
	if err := c.fs.Remove(src); err != nil {
		return n, moveError(err, src, dst)
	}
	return n, nil
}

// errSameFile is returned when a copy would truncate its own source.
var errSameFile = errors.New("source and destination are the same file")

func (c *Copier) checkDistinct(src, dst string) error {
	srcAbs, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	dstAbs, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	if srcAbs == dstAbs {
		return errSameFile
	}

	// Links and bind mounts can still point both names at one file.
	srcInfo, err := c.fs.Stat(src)
	if err != nil {
		return nil
	}
	dstInfo, err := c.fs.Stat(dst)
	if err != nil {
		return nil
	}
	if os.SameFile(srcInfo, dstInfo) {
		return errSameFile
	}
	return nil
}

func (c *Copier) create(path string) (afero.File, error) {
	if err := c.fs.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, err
	}
	return c.fs.Create(path)
}

// CopyStream copies src to dst through a StreamBufferSize buffer.
func CopyStream(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, StreamBufferSize)
	var total int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			total += int64(w)
			if werr != nil {
				return total, werr
			}
			if w < n {
				return total, io.ErrShortWrite
			}
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// CopyLines copies src to dst line by line and returns the number of lines
// written. Every written line ends in "\n".
func CopyLines(dst io.Writer, src io.Reader) (int, error) {
	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)
	lines := 0
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if _, werr := w.WriteString(line + "\n"); werr != nil {
				return lines, werr
			}
			lines++
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return lines, err
		}
	}
	return lines, w.Flush()
}

func copyError(err error, src, dst string) error {
	return zerr.With(zerr.With(fmt.Errorf("%w: %w", domain.ErrCopyFailed, err), "source", src), "destination", dst)
}

func moveError(err error, src, dst string) error {
	return zerr.With(zerr.With(fmt.Errorf("%w: %w", domain.ErrMoveFailed, err), "source", src), "destination", dst)
}
