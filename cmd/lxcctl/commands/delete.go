package commands

import (
	"github.com/irahardianto/lxcctl/internal/engine/formatter"
	"github.com/spf13/cobra"
)

var flagDeleteStop bool

var deleteCmd = &cobra.Command{
	Use:   "delete CONTAINER",
	Short: "Destroy a container with lxc-destroy",
	Long: `Destroy a container. A running container is refused unless --stop is given,
in which case it is stopped first; a failed stop does not prevent the destroy.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s, err := openSession(cmd, "delete", name)
		if err != nil {
			return err
		}

		out, err := s.facade.Delete(cmd.Context(), name, flagDeleteStop)
		return s.finish(formatter.Result{Op: "delete", Container: name, Output: out}, err)
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&flagDeleteStop, "stop", false, "Stop the container first if it is running")
	rootCmd.AddCommand(deleteCmd)
}
