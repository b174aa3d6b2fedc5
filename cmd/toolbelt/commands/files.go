package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.trai.ch/toolbelt/internal/ui/style"
)

func (c *CLI) newCopyCmd() *cobra.Command {
	var lines bool
	cmd := &cobra.Command{
		Use:   "copy <source> <destination>",
		Short: "Copy a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			var detail string
			if lines {
				n, err := c.app.CopyLines(src, dst)
				if err != nil {
					return err
				}
				detail = humanize.Comma(int64(n)) + " lines"
			} else {
				n, err := c.app.Copy(src, dst)
				if err != nil {
					return err
				}
				//nolint:gosec // sizes are never negative
				detail = humanize.Bytes(uint64(n))
			}
			newPrinter(cmd).success(fmt.Sprintf("%s %s %s (%s)", src, style.Arrow, dst, detail))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&lines, "lines", "l", false, "Copy as text, one line at a time")
	return cmd
}

func (c *CLI) newMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <source> <destination>",
		Short: "Move a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			n, err := c.app.Move(src, dst)
			if err != nil {
				return err
			}
			//nolint:gosec // sizes are never negative
			newPrinter(cmd).success(fmt.Sprintf("%s %s %s (%s)", src, style.Arrow, dst, humanize.Bytes(uint64(n))))
			return nil
		},
	}
}
