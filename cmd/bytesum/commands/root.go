// Package commands implements the CLI commands for bytesum.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/bytesum/internal/app"
	"go.trai.ch/bytesum/internal/build"
	"go.trai.ch/bytesum/internal/core/ports"
)

// quieter is implemented by loggers that can drop informational output.
type quieter interface {
	SetQuiet(quiet bool)
}

// CLI represents the command line interface for bytesum.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bytesum",
		Short:         "Compute byte-sum checksums for every file in a directory tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only log errors")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		if q, ok := c.logger.(quieter); ok {
			q.SetQuiet(quiet)
		}
	}

	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

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

// SetIO sets the input and output streams of the root command. Used for testing.
func (c *CLI) SetIO(in io.Reader, out io.Writer) {
	c.rootCmd.SetIn(in)
	c.rootCmd.SetOut(out)
}
