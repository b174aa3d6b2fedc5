// Package main is the entry point for the toolbelt command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/toolbelt/cmd/toolbelt/commands"
	"go.trai.ch/toolbelt/internal/app"
	"go.trai.ch/toolbelt/internal/core/domain"
	_ "go.trai.ch/toolbelt/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// reported lists errors whose details were logged where they happened.
var reported = []error{
	domain.ErrBuildExecutionFailed,
	domain.ErrTaskCanceled,
	domain.ErrDocumentInvalid,
	domain.ErrTransformFailed,
	domain.ErrStylesheetNotFound,
	domain.ErrStylesheetCompile,
	domain.ErrSchemaCompile,
	domain.ErrDocumentRead,
	domain.ErrValidationLogWrite,
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available when initialization fails.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if !alreadyReported(err) {
			components.Logger.Error(err)
		}
		return 1
	}
	return 0
}

func alreadyReported(err error) bool {
	for _, target := range reported {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
