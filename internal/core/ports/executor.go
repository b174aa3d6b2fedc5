package ports

import (
	"context"
	"io"

	"go.trai.ch/toolbelt/internal/core/domain"
)

// Executor defines the interface for executing build targets.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the target's command with env layered over the task environment.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format.
	// It returns an error if the command fails or exits non-zero.
	Execute(ctx context.Context, task *domain.Task, env []string, stdout, stderr io.Writer) error
}
