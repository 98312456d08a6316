// Package commands implements the CLI commands for abi-check.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/abicheck/internal/app"
	"go.trai.ch/abicheck/internal/build"
	"go.trai.ch/abicheck/internal/core/domain"
	"go.trai.ch/abicheck/internal/core/ports"
)

// jsonSwitch is implemented by loggers that can emit JSON records.
type jsonSwitch interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for abi-check.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: log,
	}

	rootCmd := &cobra.Command{
		Use:   "abi-check",
		Short: "Check ABI compatibility between two Git revisions",
		Long: "Builds the libraries at an old and a new revision, dumps their ABI and " +
			"fails when abi-compliance-checker reports an incompatible change.\n\n" +
			"The old revision defaults to the content of '" + domain.RevisionFileName + "', " +
			"the new one to HEAD.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				if l, ok := c.logger.(jsonSwitch); ok {
					l.SetJSON(true)
				}
			}
		},
		RunE: c.runCheck,
	}
	rootCmd.SetVersionTemplate(
		"abi-check version {{.Version}} (commit " + build.Commit + ", built " + build.Date + ")\n",
	)

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("old", "o", "",
		"Old revision; defaults to reading from '"+domain.RevisionFileName+"'")
	rootCmd.Flags().StringP("new", "n", "", "New revision; defaults to 'HEAD'")
	rootCmd.Flags().BoolP("update", "u", false,
		"Update '"+domain.RevisionFileName+"' file with current 'HEAD'")
	rootCmd.Flags().Bool("no-cache", false, "Bypass the dump cache and rebuild both revisions")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the settings file (default: nearest "+domain.SettingsFileName+")")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runCheck(cmd *cobra.Command, _ []string) error {
	oldRev, _ := cmd.Flags().GetString("old")
	newRev, _ := cmd.Flags().GetString("new")
	update, _ := cmd.Flags().GetBool("update")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	configPath, _ := cmd.Flags().GetString("config")

	return c.app.Check(cmd.Context(), app.CheckOptions{
		Old:        oldRev,
		New:        newRev,
		Update:     update,
		ConfigPath: configPath,
		NoCache:    noCache,
	})
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
