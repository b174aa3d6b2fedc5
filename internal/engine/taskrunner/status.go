// Package taskrunner runs an external build tool as a child process and
// streams its output into a buffered status sink.
package taskrunner

import (
	"bytes"
	"errors"
	"io"
	"sync"
)

// StatusFlushThreshold is the buffered size above which Append flushes
// without being asked to.
const StatusFlushThreshold = 1024

var errStatusClosed = errors.New("status buffer is closed")

// StatusBuffer accumulates status text in front of a sink. It is safe for
// concurrent use. A nil sink discards everything.
type StatusBuffer struct {
	mu        sync.Mutex
	sink      io.Writer
	buffer    bytes.Buffer
	threshold int
	closed    bool
}

// NewStatusBuffer creates a StatusBuffer flushing into sink.
func NewStatusBuffer(sink io.Writer) *StatusBuffer {
	return &StatusBuffer{sink: sink, threshold: StatusFlushThreshold}
}

// Append adds text. The buffer is flushed when flush is set or when the
// buffered size exceeds StatusFlushThreshold.
func (b *StatusBuffer) Append(text string, flush bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return errStatusClosed
	}
	if b.sink == nil {
		return nil
	}

	b.buffer.WriteString(text)
	if flush || b.buffer.Len() > b.threshold {
		return b.flushLocked()
	}
	return nil
}

// Write implements io.Writer by appending p without forcing a flush.
func (b *StatusBuffer) Write(p []byte) (int, error) {
	if err := b.Append(string(p), false); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Flush writes any buffered text to the sink.
func (b *StatusBuffer) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	return b.flushLocked()
}

// Close flushes and rejects further appends.
func (b *StatusBuffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	return b.flushLocked()
}

// flushLocked must be called with mu held. Writing while holding the lock
// keeps flushed chunks in append order.
func (b *StatusBuffer) flushLocked() error {
	if b.buffer.Len() == 0 || b.sink == nil {
		return nil
	}
	_, err := b.sink.Write(b.buffer.Bytes())
	b.buffer.Reset()
	return err
}
