// Package validation checks XML documents against schemas and records every
// reported problem in an append-only error log.
package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/zerr"
)

// ErrorLog is an append-only text file. Each Write opens the file, appends
// the whole buffer and closes it again, so blocks from concurrent writers
// never interleave.
type ErrorLog struct {
	mu   sync.Mutex
	path string
}

// NewErrorLog removes any log left at path by an earlier process and returns
// an ErrorLog that recreates it on the first write.
func NewErrorLog(path string) (*ErrorLog, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrValidationLogWrite, err), "path", path)
	}
	return &ErrorLog{path: path}, nil
}

// Path returns the log location.
func (l *ErrorLog) Path() string {
	return l.path
}

// Write appends p to the log.
func (l *ErrorLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	//nolint:gosec // log path comes from configuration
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return 0, zerr.With(fmt.Errorf("%w: %w", domain.ErrValidationLogWrite, err), "path", l.path)
	}

	n, err := f.Write(p)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, zerr.With(fmt.Errorf("%w: %w", domain.ErrValidationLogWrite, err), "path", l.path)
	}
	return n, nil
}
