package commands

import (
	"context"

	"github.com/irahardianto/lxcctl/internal/engine/formatter"
	"github.com/irahardianto/lxcctl/internal/engine/lxc"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start CONTAINER",
	Short: "Start a stopped container in the background",
	Long: `Start a container that lxc-info reports as STOPPED, then print its state as
reported right after lxc-start returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(cmd, "start", args[0], (*lxc.Facade).Start)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop CONTAINER",
	Short: "Stop a running container",
	Long: `Stop a container that lxc-info reports as RUNNING, then print its state as
reported right after lxc-stop returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransition(cmd, "stop", args[0], (*lxc.Facade).Stop)
	},
}

func runTransition(cmd *cobra.Command, op, name string, fn func(*lxc.Facade, context.Context, string) (lxc.Info, error)) error {
	s, err := openSession(cmd, op, name)
	if err != nil {
		return err
	}

	info, err := fn(s.facade, cmd.Context(), name)
	return s.finish(formatter.Result{Op: op, Container: name, Info: info}, err)
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
}
