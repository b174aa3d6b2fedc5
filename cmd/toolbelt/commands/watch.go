package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dirs...]",
		Short: "Watch stylesheet directories and report changes",
		Long: "Watch stylesheet directories and flush cached stylesheets when they change.\n\n" +
			"Without arguments the directories listed under stylesheets.watch in\n" +
			"toolbelt.yaml are watched, or the working directory when none are set.\n" +
			"Runs until interrupted.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.WatchStylesheets(cmd.Context(), args...)
		},
	}
}
