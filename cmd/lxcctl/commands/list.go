package commands

import (
	"github.com/irahardianto/lxcctl/internal/engine/formatter"
	"github.com/spf13/cobra"
)

var flagListNames bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List containers",
	Long: `List the containers known to lxc-ls. By default the raw lxc-ls output is
printed; --names prints one container name per line.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openSession(cmd, "list", "")
		if err != nil {
			return err
		}

		res := formatter.Result{Op: "list"}
		if flagListNames {
			res.Names, err = s.facade.ContainerNames(cmd.Context())
			if res.Names == nil && err == nil {
				res.Names = []string{}
			}
		} else {
			res.Output, err = s.facade.ListContainers(cmd.Context())
		}
		return s.finish(res, err)
	},
}

func init() {
	listCmd.Flags().BoolVar(&flagListNames, "names", false, "Print container names one per line")
	rootCmd.AddCommand(listCmd)
}
