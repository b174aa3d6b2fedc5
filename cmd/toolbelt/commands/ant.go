package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAntCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ant <target>",
		Short: "Run a target with the external Ant build tool",
		Long: "Run a target with the external Ant build tool.\n\n" +
			"The tool is launched with the Java runtime, home and build file from\n" +
			"toolbelt.yaml. Its output is streamed as it arrives; interrupting the\n" +
			"command stops the build tool.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunAnt(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}
