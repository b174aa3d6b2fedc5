package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/toolbelt/internal/core/domain"
)

func (c *CLI) newDTGCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dtg",
		Short: "Print the current date-time group",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			newPrinter(cmd).line(c.app.DateTimeGroup())
		},
	}
}

func (c *CLI) newStampCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "stamp <name>",
		Short: "Write a build stamp file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := c.app.WriteBuildStamp(args[0], output)
			if err != nil {
				return err
			}
			p := newPrinter(cmd)
			p.line(line)
			p.faint("written to " + output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", domain.DefaultBuildStampFile, "File to write the stamp to")
	return cmd
}
