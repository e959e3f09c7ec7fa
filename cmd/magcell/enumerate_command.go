package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEnumerateCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "enumerate <structures.yaml>",
		Short: "Generate magnetic variants for every input structure",
		Long: "Generate magnetic variants for every input structure.\n\n" +
			"The magnetization scheme decides which variants are produced. Defect\n" +
			"calculations additionally rescale and classify every variant.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			structures, err := loadStructures(args[0])
			if err != nil {
				return err
			}
			runner, err := ctx.runner(cmd)
			if err != nil {
				return err
			}
			res, err := runner.Run(cmd.Context(), structures)
			if err != nil {
				return err
			}

			view := newResultView(res)
			if jsonOut {
				return writeJSON(cmd, view)
			}

			out := cmd.OutOrStdout()
			var rows [][]string
			var siteRows [][]string
			for _, sv := range view.Structures {
				for _, vv := range sv.Variants {
					rows = append(rows, []string{sv.Label, vv.Label, joinFloats(vv.Moments)})
					if vv.Sites != nil {
						siteRows = append(siteRows, environmentRows([]string{sv.Label, vv.Label}, *vv.Sites)...)
					}
				}
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Structure", "Variant", "Moments"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			if len(siteRows) > 0 {
				fmt.Fprintln(out, renderTable(
					[]string{"Structure", "Variant", "Supercell", "Key", "Species", "Site", "Members"},
					siteRows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
				))
			}
			fmt.Fprintf(out, "%d variants from %d structures (run %s)\n", res.VariantCount(), len(res.Structures), res.RunID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of tables")
	return cmd
}
