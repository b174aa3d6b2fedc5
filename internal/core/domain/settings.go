package domain

const (
	// SettingsFileName is the name of the optional toolbelt configuration file.
	SettingsFileName = "toolbelt.yaml"
	// DefaultValidationLog is the error log written by the XML validator.
	DefaultValidationLog = "ValidationErrors.txt"
	// DefaultBuildFile is the build file read by the in-process build engine.
	DefaultBuildFile = "build.yaml"
	// DefaultStatePath is where the build engine records successful target runs.
	DefaultStatePath = StateDirName + "/state.json"
	// DefaultBuildStampFile is the file written by the stamp command.
	DefaultBuildStampFile = "buildStamp.txt"
	// DefaultParallelism is the number of build targets run at once.
	DefaultParallelism = 4
)

// Settings is the resolved toolbelt configuration.
type Settings struct {
	ValidationLog string
	Ant           AntSettings
	Build         BuildSettings
	Stylesheets   StylesheetSettings
}

// AntSettings describes how the external build tool is launched.
type AntSettings struct {
	Java       string
	Home       string
	BuildFile  string
	Lib        string
	Verbose    bool
	Properties map[string]string
}

// BuildSettings configures the in-process build engine.
type BuildSettings struct {
	File        string
	State       string
	Parallelism int
}

// StylesheetSettings configures stylesheet cache invalidation.
type StylesheetSettings struct {
	Watch []string
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() Settings {
	return Settings{
		ValidationLog: DefaultValidationLog,
		Ant: AntSettings{
			Java:      "java",
			BuildFile: "build.xml",
			Verbose:   true,
		},
		Build: BuildSettings{
			File:        DefaultBuildFile,
			State:       DefaultStatePath,
			Parallelism: DefaultParallelism,
		},
	}
}
