package commands

import (
	"github.com/irahardianto/lxcctl/internal/engine/formatter"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info CONTAINER",
	Short: "Show lxc-info attributes of a container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s, err := openSession(cmd, "info", name)
		if err != nil {
			return err
		}

		info, err := s.facade.Info(cmd.Context(), name)
		return s.finish(formatter.Result{Op: "info", Container: name, Info: info}, err)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
