package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/toolbelt/internal/adapters/logger"
	"go.trai.ch/zerr"
)

var errSentinel = zerr.New("stylesheet not found")

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("plain"),
			want: []logger.ErrorEntry{{Message: "plain"}},
		},
		{
			name: "wrapped chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer"),
			want: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{}},
				{Message: "middle", Metadata: map[string]any{}},
				{Message: "root"},
			},
		},
		{
			name: "metadata on wrapped sentinel",
			err:  zerr.With(zerr.Wrap(errSentinel, "cannot transform"), "path", "a.xsl"),
			want: []logger.ErrorEntry{
				{Message: "cannot transform", Metadata: map[string]any{"path": "a.xsl"}},
				{Message: "stylesheet not found", Metadata: map[string]any{}},
			},
		},
		{
			name: "metadata on joined standard error",
			err:  zerr.With(fmt.Errorf("%w: %w", errSentinel, errors.New("stat failed")), "path", "a.xsl"),
			want: []logger.ErrorEntry{
				{Message: "stylesheet not found: stat failed", Metadata: map[string]any{"path": "a.xsl"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntriesExported(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "caused by",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{{
				Message:  "task failed",
				Metadata: map[string]any{"target": "dist", "exit_code": 2},
			}},
			want: "Error: task failed\n       exit_code: 2\n       target: dist",
		},
		{
			name:    "multiline cause",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "line1\nline2"}},
			want:    "Error: main\n\n  Caused by:\n    → line1\n      line2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
