package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/toolbelt/internal/ui/style"
)

func (c *CLI) newTransformCmd() *cobra.Command {
	var defs []string
	cmd := &cobra.Command{
		Use:   "transform <input> <output> <stylesheet>",
		Short: "Apply an XSLT stylesheet to an XML document",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output, xsl := args[0], args[1], args[2]
			params, err := parseProperties(defs)
			if err != nil {
				return err
			}
			watch, _ := cmd.Flags().GetBool("watch")
			if watch {
				return c.app.TransformWatch(cmd.Context(), input, output, xsl, params)
			}
			if err := c.app.Transform(input, output, xsl, params); err != nil {
				return err
			}
			newPrinter(cmd).success(input + " " + style.Arrow + " " + output)
			return nil
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Transform again whenever the stylesheet changes")
	cmd.Flags().StringArrayVarP(&defs, "param", "p", nil, "Pass a stylesheet parameter (name=value)")
	return cmd
}
