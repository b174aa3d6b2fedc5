// Package shell runs build target commands and external processes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor. Commands run attached to a pseudo
// terminal so tools keep their interactive formatting; every output line is
// also reported to the logger.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs the target's command and waits for it to finish.
func (e *Executor) Execute(ctx context.Context, task *domain.Task, env []string, stdout, _ io.Writer) error {
	if len(task.Command) == 0 {
		return nil
	}

	name := task.Command[0]
	cmdEnv := resolveEnvironment(os.Environ(), env, task.Environment)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, task.Command[1:]...) //nolint:gosec // build file command
	cmd.Args[0] = name
	cmd.Env = cmdEnv
	if dir := task.WorkingDir.String(); dir != "" {
		cmd.Dir = dir
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrProcessStart, err), "command", name)
	}

	if stdout == nil {
		stdout = io.Discard
	}
	lines := &logWriter{logger: e.logger}
	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// Reads fail with EIO once the child exits; that ends the copy.
		_, _ = io.Copy(io.MultiWriter(lines, stdout), ptmx)
	}()

	waitErr := cmd.Wait()
	<-ioDone
	lines.Close()

	if waitErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(waitErr, "command failed"), "exit_code", exitCode)
	}
	return nil
}

// logWriter reports each complete line it receives.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close reports any trailing partial line.
func (w *logWriter) Close() {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
}

func (w *logWriter) logLine(line []byte) {
	// Pseudo terminals end lines with \r\n.
	w.logger.Info(strings.TrimSuffix(string(line), "\r"))
}

// inheritedEnvVars are the only host variables a build target sees.
var inheritedEnvVars = map[string]struct{}{
	"HOME":      {},
	"JAVA_HOME": {},
	"PATH":      {},
	"TERM":      {},
	"TMPDIR":    {},
	"USER":      {},
}

// resolveEnvironment layers, from lowest to highest priority, the allow-listed
// host variables, the build properties and the target's own environment.
func resolveEnvironment(sysEnv, props []string, taskEnv map[string]string) []string {
	env := make(map[string]string)
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			if _, allowed := inheritedEnvVars[k]; allowed {
				env[k] = v
			}
		}
	}
	for _, entry := range props {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	for k, v := range taskEnv {
		env[k] = v
	}

	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches the PATH entry of env for an executable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func isExecutable(file string) bool {
	d, err := os.Stat(file)
	if err != nil {
		return false
	}
	m := d.Mode()
	return !m.IsDir() && m&0o111 != 0
}
