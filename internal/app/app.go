// Package app implements the application layer for toolbelt.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/toolbelt/internal/adapters/cas"
	"go.trai.ch/toolbelt/internal/adapters/fs"
	"go.trai.ch/toolbelt/internal/adapters/geodesy"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/toolbelt/internal/engine/scheduler"
	"go.trai.ch/toolbelt/internal/engine/stylesheet"
	"go.trai.ch/toolbelt/internal/engine/taskrunner"
	"go.trai.ch/toolbelt/internal/engine/validation"
	"go.trai.ch/toolbelt/internal/engine/xmldoc"
	"go.trai.ch/zerr"
)

// Deps are the components App is built from.
type Deps struct {
	Loader      ports.ConfigLoader
	Logger      ports.Logger
	Transformer *stylesheet.Transformer
	Invalidator *stylesheet.Invalidator
	Schemas     ports.SchemaCompiler
	Starter     ports.ProcessStarter
	Scheduler   *scheduler.Scheduler
	Stores      *cas.Opener
	Copier      *fs.Copier
	Projector   *geodesy.Projector
}

// App represents the main application logic.
type App struct {
	deps Deps
	now  func() time.Time
	cwd  func() (string, error)

	settingsOnce sync.Once
	settings     domain.Settings
	settingsErr  error

	validatorOnce sync.Once
	validator     *validation.Validator
	validatorErr  error
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{deps: deps, now: time.Now, cwd: os.Getwd}
}

// WithClock replaces the clock used for date-time groups and validation
// log headers. It must be called before the first command runs.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithWorkDir pins the directory settings are searched from.
func (a *App) WithWorkDir(dir string) *App {
	a.cwd = func() (string, error) { return dir, nil }
	return a
}

// Settings returns the configuration found from the working directory.
// It is loaded once per process.
func (a *App) Settings() (domain.Settings, error) {
	a.settingsOnce.Do(func() {
		cwd, err := a.cwd()
		if err != nil {
			a.settingsErr = zerr.Wrap(err, "failed to determine working directory")
			return
		}
		a.settings, a.settingsErr = a.deps.Loader.LoadSettings(cwd)
	})
	return a.settings, a.settingsErr
}

// Transform applies the stylesheet xsl to input and writes output. params
// are bound to the stylesheet's top-level parameters.
func (a *App) Transform(input, output, xsl string, params map[string]string) error {
	return a.deps.Transformer.Run(input, output, xsl, params)
}

// Validate checks doc against schema and appends the outcome to the
// validation error log. The log is reset the first time it is used.
func (a *App) Validate(doc, schema string) (domain.Report, error) {
	v, err := a.getValidator()
	if err != nil {
		return domain.Report{}, err
	}
	return v.Validate(doc, schema)
}

func (a *App) getValidator() (*validation.Validator, error) {
	a.validatorOnce.Do(func() {
		settings, err := a.Settings()
		if err != nil {
			a.validatorErr = err
			return
		}
		log, err := validation.NewErrorLog(settings.ValidationLog)
		if err != nil {
			a.validatorErr = err
			return
		}
		a.validator = validation.NewValidator(a.deps.Schemas, log, a.deps.Logger, validation.WithClock(a.now))
	})
	return a.validator, a.validatorErr
}

// RunAnt runs target with the external build tool and streams its status
// to out. Canceling ctx cancels the run.
func (a *App) RunAnt(ctx context.Context, target string, out io.Writer) error {
	settings, err := a.Settings()
	if err != nil {
		return err
	}
	dir, err := a.cwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	status := taskrunner.NewStatusBuffer(out)
	defer func() { _ = status.Close() }()

	runner := taskrunner.NewRunner(taskrunner.AntArgs(settings.Ant), a.deps.Starter, status, dir)
	return runner.Run(ctx, target)
}

// BuildOptions configures Build.
type BuildOptions struct {
	// Properties are passed to every target, overriding nothing else.
	Properties map[string]string
	// NoCache runs every target even when its inputs are unchanged.
	NoCache bool
	// File overrides the configured build file.
	File string
}

// Build runs targets from the build file with the in-process engine.
func (a *App) Build(ctx context.Context, targets []string, opts BuildOptions) error {
	settings, err := a.Settings()
	if err != nil {
		return err
	}

	file := settings.Build.File
	if opts.File != "" {
		file = opts.File
	}
	graph, err := a.deps.Loader.LoadBuildFile(file)
	if err != nil {
		return zerr.Wrap(err, "failed to load build file")
	}

	req := scheduler.Request{
		Graph:       graph,
		Targets:     targets,
		Properties:  opts.Properties,
		Parallelism: settings.Build.Parallelism,
	}
	if !opts.NoCache {
		store, err := a.deps.Stores.Open(settings.Build.State)
		if err != nil {
			return err
		}
		req.Store = store
	}
	return a.deps.Scheduler.Run(ctx, req)
}

// Copy copies src to dst byte for byte and returns the bytes copied.
func (a *App) Copy(src, dst string) (int64, error) {
	return a.deps.Copier.CopyFile(src, dst)
}

// CopyLines copies the text file src to dst line by line and returns the
// number of lines written.
func (a *App) CopyLines(src, dst string) (int, error) {
	return a.deps.Copier.CopyFileLines(src, dst)
}

// Move moves src to dst and returns the size of the moved file.
func (a *App) Move(src, dst string) (int64, error) {
	return a.deps.Copier.MoveFile(src, dst)
}

// DateTimeGroup returns the current date-time group.
func (a *App) DateTimeGroup() string {
	return domain.FormatDateTimeGroup(a.now())
}

// WriteBuildStamp writes the build stamp line for name to path and returns it.
func (a *App) WriteBuildStamp(name, path string) (string, error) {
	line := domain.BuildStamp(name, a.now())
	//nolint:gosec // stamp path is supplied by the operator
	if err := os.WriteFile(path, []byte(line+"\n"), domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write build stamp"), "path", path)
	}
	return line, nil
}

// ToUTM projects a geodetic position onto the UTM grid.
func (a *App) ToUTM(p domain.LatLon) (domain.UTMPoint, error) {
	return a.deps.Projector.ToUTM(p)
}

// FromUTM converts a UTM position to latitude and longitude.
func (a *App) FromUTM(u domain.UTMPoint) (domain.LatLon, error) {
	return a.deps.Projector.ToLatLon(u)
}

// Offset moves origin east and north meters along its UTM grid.
func (a *App) Offset(origin domain.LatLon, east, north float64) (domain.LatLon, error) {
	return a.deps.Projector.Offset(origin, east, north)
}

// MGRS returns the grid reference of p at the given precision.
func (a *App) MGRS(p domain.LatLon, digits int) (string, error) {
	return a.deps.Projector.MGRS(p, digits)
}

// FormatXML pretty-prints the document at path in place.
func (a *App) FormatXML(path string) error {
	return xmldoc.Format(path)
}

// TransformWatch runs Transform, then runs it again each time the
// stylesheet changes until ctx is canceled. Failed runs are logged and do
// not end the watch.
func (a *App) TransformWatch(ctx context.Context, input, output, xsl string, params map[string]string) error {
	target, err := filepath.Abs(xsl)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve stylesheet path"), "path", xsl)
	}

	_ = a.Transform(input, output, xsl, params)
	err = a.deps.Invalidator.Watch(ctx, func(path string) {
		if path == target {
			_ = a.Transform(input, output, xsl, params)
		}
	}, filepath.Dir(target))
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// WatchStylesheets flushes cached stylesheets whenever they change below
// dirs, or below the configured directories when dirs is empty. It blocks
// until ctx is canceled.
func (a *App) WatchStylesheets(ctx context.Context, dirs ...string) error {
	if len(dirs) == 0 {
		settings, err := a.Settings()
		if err != nil {
			return err
		}
		dirs = settings.Stylesheets.Watch
	}
	if len(dirs) == 0 {
		cwd, err := a.cwd()
		if err != nil {
			return zerr.Wrap(err, "failed to determine working directory")
		}
		dirs = []string{cwd}
	}

	err := a.deps.Invalidator.Run(ctx, dirs...)
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
