package scheduler

import (
	"fmt"
	"strings"

	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildListener = (*LogListener)(nil)

// LogListener reports build progress through a logger.
type LogListener struct {
	logger ports.Logger
}

// NewLogListener creates a new LogListener.
func NewLogListener(logger ports.Logger) *LogListener {
	return &LogListener{logger: logger}
}

func (l *LogListener) BuildStarted(targets []string) {
	l.logger.Info("building " + strings.Join(targets, ", "))
}

func (l *LogListener) TargetStarted(name string) {
	l.logger.Info(name + ":")
}

func (l *LogListener) TargetSkipped(name string) {
	l.logger.Info(fmt.Sprintf("%s: up to date", name))
}

func (l *LogListener) TargetFinished(name string, err error) {
	if err != nil {
		l.logger.Error(zerr.With(zerr.Wrap(err, "target failed"), "target", name))
	}
}

func (l *LogListener) BuildFinished(err error) {
	if err != nil {
		l.logger.Warn("BUILD FAILED")
		return
	}
	l.logger.Info("BUILD SUCCESSFUL")
}

var _ ports.BuildListener = Listeners(nil)

// Listeners forwards every build event to each listener in order.
type Listeners []ports.BuildListener

func (ls Listeners) BuildStarted(targets []string) {
	for _, l := range ls {
		l.BuildStarted(targets)
	}
}

func (ls Listeners) TargetStarted(name string) {
	for _, l := range ls {
		l.TargetStarted(name)
	}
}

func (ls Listeners) TargetSkipped(name string) {
	for _, l := range ls {
		l.TargetSkipped(name)
	}
}

func (ls Listeners) TargetFinished(name string, err error) {
	for _, l := range ls {
		l.TargetFinished(name, err)
	}
}

func (ls Listeners) BuildFinished(err error) {
	for _, l := range ls {
		l.BuildFinished(err)
	}
}
