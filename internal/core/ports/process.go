package ports

import (
	"context"
	"io"
)

// Process is a launched child process with its output streams.
type Process interface {
	// Stdout returns the child's standard output stream.
	Stdout() io.Reader
	// Stderr returns the child's standard error stream.
	Stderr() io.Reader
	// Wait blocks until the child exits. Both streams must be drained first.
	Wait() error
	// Kill forcibly terminates the child. Killing an exited process is a no-op.
	Kill() error
}

// ProcessStarter launches external processes.
//
//go:generate mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessStarter interface {
	// Start launches args[0] with the remaining arguments in dir.
	Start(ctx context.Context, args []string, dir string) (Process, error)
}
