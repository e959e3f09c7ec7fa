package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magcell/workflow"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "classify <structures.yaml>",
		Short: "List one representative site per coordination environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			structures, err := loadStructures(args[0])
			if err != nil {
				return err
			}
			runner, err := ctx.runner(cmd)
			if err != nil {
				return err
			}

			type classified struct {
				Label string      `json:"label"`
				Sites siteMapView `json:"sites"`
			}
			views := make([]classified, 0, len(structures))
			for n, s := range structures {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				label := workflow.StructureLabel(n+1, s)
				m, err := runner.Classify(s)
				if err != nil {
					return fmt.Errorf("%s: %w", label, err)
				}
				views = append(views, classified{Label: label, Sites: newSiteMapView(m)})
			}

			if jsonOut {
				return writeJSON(cmd, views)
			}

			var rows [][]string
			for _, v := range views {
				rows = append(rows, environmentRows([]string{v.Label}, v.Sites)...)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Structure", "Supercell", "Key", "Species", "Site", "Members"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
