package config

// SettingsFile is the structure of toolbelt.yaml.
type SettingsFile struct {
	Validation  ValidationDTO  `yaml:"validation"`
	Ant         AntDTO         `yaml:"ant"`
	Build       BuildDTO       `yaml:"build"`
	Stylesheets StylesheetsDTO `yaml:"stylesheets"`
}

// ValidationDTO configures the XML validator.
type ValidationDTO struct {
	Log string `yaml:"log"`
}

// AntDTO configures the external build tool.
type AntDTO struct {
	Java       string            `yaml:"java"`
	Home       string            `yaml:"home"`
	BuildFile  string            `yaml:"buildfile"`
	Lib        string            `yaml:"lib"`
	Verbose    *bool             `yaml:"verbose"`
	Properties map[string]string `yaml:"properties"`
}

// BuildDTO configures the in-process build engine.
type BuildDTO struct {
	File        string `yaml:"file"`
	State       string `yaml:"state"`
	Parallelism int    `yaml:"parallelism"`
}

// StylesheetsDTO configures stylesheet cache invalidation.
type StylesheetsDTO struct {
	Watch []string `yaml:"watch"`
}

// BuildFile is the structure of build.yaml.
type BuildFile struct {
	Version string             `yaml:"version"`
	Root    string             `yaml:"root"`
	Tasks   map[string]TaskDTO `yaml:"tasks"`
}

// TaskDTO represents a build target definition.
type TaskDTO struct {
	Input       []string          `yaml:"input"`
	Cmd         []string          `yaml:"cmd"`
	Target      []string          `yaml:"target"`
	DependsOn   []string          `yaml:"dependsOn"`
	Environment map[string]string `yaml:"environment"`
	WorkingDir  string            `yaml:"workingDir"`
}
