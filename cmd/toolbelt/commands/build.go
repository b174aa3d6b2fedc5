package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/toolbelt/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var (
		props   []string
		noCache bool
		file    string
	)
	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Run targets from the build file",
		Long: "Run targets from the build file and everything they depend on.\n\n" +
			"Targets that declare inputs are skipped when neither their inputs nor\n" +
			"their outputs changed since the last successful run. With no targets,\n" +
			"every target in the build file runs.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			properties, err := parseProperties(props)
			if err != nil {
				return err
			}
			return c.app.Build(cmd.Context(), args, app.BuildOptions{
				Properties: properties,
				NoCache:    noCache,
				File:       file,
			})
		},
	}
	cmd.Flags().StringArrayVarP(&props, "define", "D", nil, "Set a build property (name=value)")
	cmd.Flags().BoolVarP(&noCache, "no-cache", "n", false, "Run every target, ignoring recorded builds")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Build file to read instead of the configured one")
	return cmd
}

func parseProperties(defs []string) (map[string]string, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	props := make(map[string]string, len(defs))
	for _, def := range defs {
		name, value, ok := strings.Cut(def, "=")
		if !ok || name == "" {
			return nil, zerr.With(zerr.New("expected name=value"), "definition", def)
		}
		props[name] = value
	}
	return props, nil
}
