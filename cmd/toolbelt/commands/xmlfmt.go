package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newXMLFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xmlfmt <file>...",
		Short: "Pretty-print XML files in place",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd)
			for _, path := range args {
				if err := c.app.FormatXML(path); err != nil {
					return err
				}
				p.success(path)
			}
			return nil
		},
	}
}
