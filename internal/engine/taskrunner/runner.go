package taskrunner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"slices"
	"sync"

	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Status messages written around a run.
const (
	MsgBegun    = "Task begun.\n"
	MsgComplete = "\nTask complete.\n"
	MsgCanceled = "\nTask canceled.\n"
)

// lineBuffer bounds how far the stream readers may run ahead of the status
// consumer.
const lineBuffer = 64

// Runner launches the build tool for one target at a time.
type Runner struct {
	args    []string
	starter ports.ProcessStarter
	status  *StatusBuffer
	dir     string

	mu       sync.Mutex
	proc     ports.Process
	canceled bool
}

// NewRunner creates a Runner. An empty dir runs the child in the current
// working directory.
func NewRunner(args []string, starter ports.ProcessStarter, status *StatusBuffer, dir string) *Runner {
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	return &Runner{
		args:    slices.Clone(args),
		starter: starter,
		status:  status,
		dir:     dir,
	}
}

// Run launches the fixed command line followed by target and blocks until
// the child exits. Output from both streams is forwarded line by line to the
// status buffer; lines keep their order within a stream only.
//
// A canceled run returns domain.ErrTaskCanceled and never reports completion.
// Canceling ctx has the same effect as calling Cancel.
func (r *Runner) Run(ctx context.Context, target string) error {
	if target == "" {
		return domain.ErrNoTarget
	}

	r.mu.Lock()
	r.canceled = false
	r.mu.Unlock()

	_ = r.status.Append(MsgBegun, true)

	argv := append(slices.Clone(r.args), target)
	proc, err := r.starter.Start(ctx, argv, r.dir)
	if err != nil {
		_ = r.status.Append("\nError: "+err.Error(), true)
		return zerr.With(err, "target", target)
	}

	r.mu.Lock()
	r.proc = proc
	canceled := r.canceled
	r.mu.Unlock()
	if canceled {
		_ = proc.Kill()
	}

	stop := context.AfterFunc(ctx, r.Cancel)
	readErr := r.drain(proc)
	waitErr := proc.Wait()
	if !stop() && ctx.Err() != nil {
		r.Cancel()
	}

	r.mu.Lock()
	r.proc = nil
	canceled = r.canceled
	r.mu.Unlock()

	if canceled {
		_ = r.status.Flush()
		return zerr.With(zerr.Wrap(domain.ErrTaskCanceled, "build tool stopped"), "target", target)
	}
	if waitErr != nil {
		_ = r.status.Append("\nError: "+waitErr.Error()+"\n", true)
		return zerr.With(waitErr, "target", target)
	}
	if readErr != nil {
		_ = r.status.Append("\nError: "+readErr.Error()+"\n", true)
		return zerr.With(zerr.Wrap(readErr, "failed to read build tool output"), "target", target)
	}

	_ = r.status.Append(MsgComplete, true)
	return nil
}

// drain copies both output streams into the status buffer until they close.
func (r *Runner) drain(proc ports.Process) error {
	lines := make(chan string, lineBuffer)
	consumed := make(chan struct{})
	go func() {
		defer close(consumed)
		for line := range lines {
			_ = r.status.Append(line, false)
		}
	}()

	var g errgroup.Group
	g.Go(func() error { return readLines(proc.Stdout(), lines) })
	g.Go(func() error { return readLines(proc.Stderr(), lines) })
	err := g.Wait()

	close(lines)
	<-consumed
	return err
}

func readLines(rd io.Reader, lines chan<- string) error {
	br := bufio.NewReader(rd)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines <- line
		}
		if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Cancel stops the current run. The child, if still running, is killed and
// the status buffer receives a cancellation notice.
func (r *Runner) Cancel() {
	r.mu.Lock()
	if r.canceled {
		r.mu.Unlock()
		return
	}
	r.canceled = true
	proc := r.proc
	r.mu.Unlock()

	_ = r.status.Append(MsgCanceled, true)
	if proc != nil {
		_ = proc.Kill()
	}
}

// Canceled reports whether the current or last run was canceled.
func (r *Runner) Canceled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.canceled
}
