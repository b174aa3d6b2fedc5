package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/toolbelt/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <document> <schema>",
		Short: "Validate an XML document against an XSD schema",
		Long: "Validate an XML document against an XSD schema.\n\n" +
			"Every diagnostic is appended to the validation log, which is reset\n" +
			"the first time a process validates a document.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, schema := args[0], args[1]
			report, err := c.app.Validate(doc, schema)
			p := newPrinter(cmd)
			summary := fmt.Sprintf("%s: %d error(s), %d warning(s)", doc, report.Errors(), report.Warnings())
			switch {
			case err != nil:
				return err
			case !report.Valid:
				p.failure(summary)
				return zerr.With(zerr.Wrap(domain.ErrDocumentInvalid, "validation failed"), "document", doc)
			case report.Warnings() > 0:
				p.warning(summary)
			default:
				p.success(summary)
			}
			return nil
		},
	}
}
