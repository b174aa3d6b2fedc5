package taskrunner

import (
	"maps"
	"path/filepath"
	"slices"

	"go.trai.ch/toolbelt/internal/core/domain"
)

// LauncherClass is the entry point of the external build tool.
const LauncherClass = "org.apache.tools.ant.launch.Launcher"

// AntArgs returns the fixed command line used to launch the build tool.
// The target name is appended by Runner.Run.
func AntArgs(s domain.AntSettings) []string {
	home := absPath(s.Home)
	java := s.Java
	if java == "" {
		java = "java"
	}

	args := []string{java, "-Dant.home=" + home}
	for _, key := range slices.Sorted(maps.Keys(s.Properties)) {
		args = append(args, "-D"+key+"="+s.Properties[key])
	}
	args = append(args,
		"-cp", filepath.Join(home, "lib", "ant-launcher.jar"),
		LauncherClass,
		"-buildfile", absPath(s.BuildFile),
	)
	if s.Lib != "" {
		args = append(args, "-lib", absPath(s.Lib))
	}
	if s.Verbose {
		args = append(args, "-verbose")
	}
	return args
}

func absPath(p string) string {
	if p == "" {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
