package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newInstancesCmd(rt *runtime) *cobra.Command {
	var accelerator, catalogPath string
	cmd := &cobra.Command{
		Use:     "instances",
		Aliases: []string{"ls"},
		Short:   "List cataloged instances in selection order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rt.catalog(catalogPath)
			if err != nil {
				return err
			}
			accs := cat.Accelerators()
			if accelerator != "" {
				if _, ok := cat.Instances[accelerator]; !ok {
					return fmt.Errorf("unknown accelerator: %s", accelerator)
				}
				accs = []string{accelerator}
			}
			w := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ACCELERATOR\tNAME\tMEMORY_GB\tGPUS")
			for _, a := range accs {
				for _, inst := range cat.Instances[a] {
					fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", a, inst.Name, inst.MemoryInGB, inst.NumGPUs)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&accelerator, "accelerator", "", "Only list this accelerator")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog overlay file merged over the built-in catalog")
	return cmd
}

func newTasksCmd(rt *runtime) *cobra.Command {
	var catalogPath string
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks that have a deployment snippet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := rt.catalog(catalogPath)
			if err != nil {
				return err
			}
			for _, t := range cat.Tasks() {
				fmt.Fprintln(rt.out, t)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog overlay file merged over the built-in catalog")
	return cmd
}
