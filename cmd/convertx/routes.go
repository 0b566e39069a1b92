package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/convertx/internal/routes"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tPAGE\tTITLE\tPROGRESS")
			for _, rt := range routes.Table() {
				progress := "-"
				if rt.Progress > 0 {
					progress = fmt.Sprintf("%d%%", rt.Progress)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rt.Path, rt.Page, rt.Title, progress)
			}
			return tw.Flush()
		},
	}
}
