package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Starter implements ports.ProcessStarter with plain pipes, keeping standard
// output and standard error apart.
type Starter struct{}

// NewStarter creates a new Starter.
func NewStarter() *Starter {
	return &Starter{}
}

// Start launches args[0] in dir. The process inherits the host environment
// and leads its own process group, so Kill also stops anything it spawned.
func (s *Starter) Start(ctx context.Context, args []string, dir string) (ports.Process, error) {
	if len(args) == 0 {
		return nil, zerr.Wrap(domain.ErrProcessStart, "empty command line")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // operator supplied command line
	cmd.Dir = dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error { return killGroup(cmd.Process) }

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrProcessStart, err), "command", args[0])
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrProcessStart, err), "command", args[0])
	}
	if err := cmd.Start(); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrProcessStart, err), "command", args[0])
	}

	return &pipeProcess{cmd: cmd, stdout: stdout, stderr: stderr}, nil
}

type pipeProcess struct {
	cmd    *exec.Cmd
	stdout io.Reader
	stderr io.Reader
}

func (p *pipeProcess) Stdout() io.Reader { return p.stdout }
func (p *pipeProcess) Stderr() io.Reader { return p.stderr }

func (p *pipeProcess) Wait() error {
	if err := p.cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "process failed"), "exit_code", exitCode)
	}
	return nil
}

// Kill stops the process group. Descendants hold the output pipes open and
// would otherwise keep readers blocked after the child is gone.
func (p *pipeProcess) Kill() error {
	if err := killGroup(p.cmd.Process); err != nil {
		return zerr.Wrap(err, "failed to kill process")
	}
	return nil
}

func killGroup(proc *os.Process) error {
	err := syscall.Kill(-proc.Pid, syscall.SIGKILL)
	if errors.Is(err, syscall.ESRCH) {
		// No group left; fall back to the leader alone.
		err = proc.Kill()
	}
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
