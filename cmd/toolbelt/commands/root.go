// Package commands implements the CLI commands for toolbelt.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/toolbelt/internal/app"
	"go.trai.ch/toolbelt/internal/build"
	"go.trai.ch/toolbelt/internal/core/domain"
)

// CLI represents the command line interface for toolbelt.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Transform(input, output, xsl string, params map[string]string) error
	TransformWatch(ctx context.Context, input, output, xsl string, params map[string]string) error
	Validate(doc, schema string) (domain.Report, error)
	RunAnt(ctx context.Context, target string, out io.Writer) error
	Build(ctx context.Context, targets []string, opts app.BuildOptions) error
	Copy(src, dst string) (int64, error)
	CopyLines(src, dst string) (int, error)
	Move(src, dst string) (int64, error)
	DateTimeGroup() string
	WriteBuildStamp(name, path string) (string, error)
	ToUTM(p domain.LatLon) (domain.UTMPoint, error)
	FromUTM(u domain.UTMPoint) (domain.LatLon, error)
	Offset(origin domain.LatLon, east, north float64) (domain.LatLon, error)
	MGRS(p domain.LatLon, digits int) (string, error)
	FormatXML(path string) error
	WatchStylesheets(ctx context.Context, dirs ...string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "toolbelt",
		Short:         "Stylesheets, schemas, builds and grid references for simulation tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(
		c.newTransformCmd(),
		c.newValidateCmd(),
		c.newAntCmd(),
		c.newBuildCmd(),
		c.newCopyCmd(),
		c.newMoveCmd(),
		c.newDTGCmd(),
		c.newStampCmd(),
		c.newUTMCmd(),
		c.newLatLonCmd(),
		c.newMGRSCmd(),
		c.newXMLFmtCmd(),
		c.newWatchCmd(),
		c.newVersionCmd(),
	)

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
