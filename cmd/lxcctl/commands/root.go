// Package commands implements the CLI commands for lxcctl.
package commands

import (
	"errors"
	"fmt"

	"github.com/irahardianto/lxcctl/internal/platform/logger"
	"github.com/spf13/cobra"
)

// Global flag values accessible to all commands.
var (
	flagJSON    bool
	flagVerbose bool
	flagNoColor bool
	flagConfig  string
)

// errReported marks an error whose details were already written for the user.
var errReported = errors.New("reported")

// rootCmd is the base command for the lxcctl CLI.
var rootCmd = &cobra.Command{
	Use:   "lxcctl",
	Short: "Control LXC containers through the lxc-* tools",
	Long: `lxcctl lists, inspects, starts, stops, creates and deletes LXC containers
by running the lxc-* command-line tools and parsing their output.

Every command runs synchronously. Use --json for machine-readable results;
failures carry a kind (validation, precondition, external, parse, preflight).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		l := logger.New(flagVerbose, flagJSON, cmd.ErrOrStderr())
		ctx := logger.WithContext(cmd.Context(), l)
		cmd.SetContext(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output results as JSON to stdout")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Debug logging and raw lxc tool output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.config/lxcctl/config.yaml)")
}

// Execute runs the root command. Returns an error if the command fails.
// Errors not already rendered by a command are printed to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "error: %v\n", err)
	}
	return err
}
