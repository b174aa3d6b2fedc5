package ports

import "go.trai.ch/toolbelt/internal/core/domain"

// ConfigLoader defines the interface for loading configuration files.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// LoadSettings finds toolbelt.yaml from cwd upward and returns the settings.
	// Defaults are returned when no file exists.
	LoadSettings(cwd string) (domain.Settings, error)
	// LoadBuildFile reads the build file at path and returns the target graph.
	LoadBuildFile(path string) (*domain.Graph, error)
}
