package commands

import (
	"errors"

	"github.com/irahardianto/lxcctl/internal/engine/formatter"
	"github.com/spf13/cobra"
)

var flagPSAll bool

var psCmd = &cobra.Command{
	Use:   "ps [CONTAINER] [-- PS_ARGS...]",
	Short: "List processes running in containers",
	Long: `List the processes of one container, or of every container with --all.
Arguments after "--" are passed to ps through lxc-ps and must not contain
shell metacharacters.`,
	Example: `  lxcctl ps web01
  lxcctl ps web01 -- aux
  lxcctl ps --all -- -ef`,
	Args: func(cmd *cobra.Command, args []string) error {
		n := len(args)
		if dash := argsLenAtDash(cmd, args); dash >= 0 {
			n = dash
		}
		switch {
		case flagPSAll && n != 0:
			return errors.New("--all does not take a container name")
		case !flagPSAll && n != 1:
			return errors.New("requires exactly one container name, or --all")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		container, psargs := splitAtDash(cmd, args)

		op := "ps"
		if flagPSAll {
			op = "ps-all"
		}
		s, err := openSession(cmd, op, container)
		if err != nil {
			return err
		}

		res := formatter.Result{Op: op, Container: container}
		if flagPSAll {
			res.Processes, err = s.facade.ListAllProcesses(cmd.Context(), psargs...)
		} else {
			res.Processes, err = s.facade.ListProcesses(cmd.Context(), container, psargs...)
		}
		return s.finish(res, err)
	},
}

// splitAtDash separates the optional container name from the ps arguments
// that followed "--".
func splitAtDash(cmd *cobra.Command, args []string) (string, []string) {
	head, tail := args, []string(nil)
	if dash := argsLenAtDash(cmd, args); dash >= 0 {
		head, tail = args[:dash], args[dash:]
	}
	if len(head) == 0 {
		return "", tail
	}
	return head[0], tail
}

// argsLenAtDash is cmd.ArgsLenAtDash bounded by args. pflag keeps the dash
// position from an earlier parse of the same flag set, so a value past the
// end of args does not belong to this invocation.
func argsLenAtDash(cmd *cobra.Command, args []string) int {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 || dash > len(args) {
		return -1
	}
	return dash
}

func definePSFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagPSAll, "all", false, "List processes of all containers")
}

func init() {
	definePSFlags(psCmd)
	rootCmd.AddCommand(psCmd)
}
