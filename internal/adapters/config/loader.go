// Package config loads toolbelt.yaml settings and build files.
package config

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/toolbelt/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(fsys afero.Fs, logger ports.Logger) *Loader {
	return &Loader{fs: fsys, logger: logger}
}

// LoadSettings searches cwd and its parents for toolbelt.yaml. Relative
// paths are resolved against the directory holding the file, or against cwd
// when no file exists and defaults are used.
func (l *Loader) LoadSettings(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path, found := l.findSettings(cwd)
	if !found {
		resolveSettingsPaths(&settings, cwd)
		return settings, nil
	}

	var file SettingsFile
	if err := l.readYAML(path, &file); err != nil {
		return domain.Settings{}, err
	}
	applySettings(&settings, &file)
	if settings.Build.Parallelism < 1 {
		return domain.Settings{}, zerr.With(
			zerr.Wrap(domain.ErrConfigParseFailed, "build.parallelism must be positive"),
			"path", path)
	}

	resolveSettingsPaths(&settings, filepath.Dir(path))
	return settings, nil
}

func (l *Loader) findSettings(cwd string) (string, bool) {
	dir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(dir, domain.SettingsFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func applySettings(s *domain.Settings, f *SettingsFile) {
	setString(&s.ValidationLog, f.Validation.Log)

	setString(&s.Ant.Java, f.Ant.Java)
	setString(&s.Ant.Home, f.Ant.Home)
	setString(&s.Ant.BuildFile, f.Ant.BuildFile)
	setString(&s.Ant.Lib, f.Ant.Lib)
	if f.Ant.Verbose != nil {
		s.Ant.Verbose = *f.Ant.Verbose
	}
	if len(f.Ant.Properties) > 0 {
		s.Ant.Properties = f.Ant.Properties
	}

	setString(&s.Build.File, f.Build.File)
	setString(&s.Build.State, f.Build.State)
	if f.Build.Parallelism != 0 {
		s.Build.Parallelism = f.Build.Parallelism
	}

	s.Stylesheets.Watch = f.Stylesheets.Watch
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func resolveSettingsPaths(s *domain.Settings, base string) {
	s.ValidationLog = resolvePath(base, s.ValidationLog)
	s.Ant.Home = resolvePath(base, s.Ant.Home)
	s.Ant.BuildFile = resolvePath(base, s.Ant.BuildFile)
	s.Ant.Lib = resolvePath(base, s.Ant.Lib)
	s.Build.File = resolvePath(base, s.Build.File)
	s.Build.State = resolvePath(base, s.Build.State)
	for i, dir := range s.Stylesheets.Watch {
		s.Stylesheets.Watch[i] = resolvePath(base, dir)
	}
}

// resolvePath joins relative paths onto base. Empty stays empty.
func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(base, path))
}

// LoadBuildFile reads the build file at path and returns the validated
// target graph. The graph root is the file's directory unless the file
// names another one.
func (l *Loader) LoadBuildFile(path string) (*domain.Graph, error) {
	var file BuildFile
	if err := l.readYAML(path, &file); err != nil {
		return nil, err
	}

	root := resolveRoot(path, file.Root)
	g := domain.NewGraph()
	g.SetRoot(root)

	for _, name := range slices.Sorted(maps.Keys(file.Tasks)) {
		if err := validateTaskName(name); err != nil {
			return nil, zerr.With(err, "path", path)
		}
		dto := file.Tasks[name]
		if len(dto.Cmd) == 0 {
			l.logger.Info(fmt.Sprintf("target %s has no command and only groups its dependencies", name))
		}
		if err := g.AddTask(buildTask(name, &dto, root)); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return g, nil
}

func (l *Loader) readYAML(path string, target any) error {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err), "path", path)
	}
	return nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

func validateTaskName(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "invalid target name"), "task_name", name)
	}
	return nil
}

func buildTask(name string, dto *TaskDTO, root string) *domain.Task {
	workingDir := root
	if dto.WorkingDir != "" {
		workingDir = resolvePath(root, dto.WorkingDir)
	}
	return &domain.Task{
		Name:         domain.NewInternedString(name),
		Command:      dto.Cmd,
		Inputs:       canonicalizeStrings(dto.Input),
		Outputs:      canonicalizeStrings(dto.Target),
		Dependencies: domain.NewInternedStrings(dto.DependsOn),
		Environment:  dto.Environment,
		WorkingDir:   domain.NewInternedString(workingDir),
	}
}

func canonicalizeStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}
	sorted := slices.Clone(strs)
	slices.Sort(sorted)
	return domain.NewInternedStrings(slices.Compact(sorted))
}
