package commands

import (
	"github.com/irahardianto/lxcctl/internal/engine/formatter"
	"github.com/irahardianto/lxcctl/internal/engine/lxc"
	"github.com/spf13/cobra"
)

var (
	flagCreateTemplate     string
	flagCreateSize         string
	flagCreateBackingStore string
	flagCreateVGName       string
)

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a container with lxc-create",
	Long: `Create a container from an allowed template. The disk size must be
alphanumeric (for example 10G). The volume group is only passed to lxc-create
for the lvm backing store. Creation is confirmed only when lxc-create exits
zero and reports "'NAME' created".`,
	Example: `  lxcctl create web03 --template debian-wheezy --size 10G
  lxcctl create web04 -t debian-wheezy --size 20G -B lvm --vgname fastdisk`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s, err := openSession(cmd, "create", name)
		if err != nil {
			return err
		}

		res, err := s.facade.Create(cmd.Context(), lxc.CreateOptions{
			Name:         name,
			Template:     flagCreateTemplate,
			DiskSize:     flagCreateSize,
			BackingStore: flagCreateBackingStore,
			VGName:       flagCreateVGName,
		})
		out := formatter.Result{Op: "create", Container: name}
		if res != nil {
			out.Output = res.Output
		}
		return s.finish(out, err)
	},
}

func init() {
	createCmd.Flags().StringVarP(&flagCreateTemplate, "template", "t", "", "Container template (must be allowed by config)")
	createCmd.Flags().StringVar(&flagCreateSize, "size", "", "Root filesystem size, e.g. 10G")
	createCmd.Flags().StringVarP(&flagCreateBackingStore, "backingstore", "B", "", "Backing store (default from config, lvm)")
	createCmd.Flags().StringVar(&flagCreateVGName, "vgname", "", "LVM volume group (default from config, containers)")
	_ = createCmd.MarkFlagRequired("template")
	_ = createCmd.MarkFlagRequired("size")
	rootCmd.AddCommand(createCmd)
}
