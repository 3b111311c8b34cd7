package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeplan/roadmap"
)

func mapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maps",
		Short: "List built-in maps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tINTERSECTIONS\tROADS\tISOLATED")
			for _, name := range roadmap.SampleNames() {
				m, err := roadmap.Sample(name)
				if err != nil {
					return err
				}
				st := m.Stats()
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", name, st.Intersections, st.Roads, st.Isolated)
			}

			return tw.Flush()
		},
	}
}
