package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (c *cli) rankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print countries ranked by emissions trend",
		Long: `Print every country ranked by the correlation between its total GHG
emissions and time, steepest rise first. Constant series have no defined
correlation and are listed as n/a, ranked as a flat trend.`,
		Args: cobra.NoArgs,
		RunE: c.runRank,
	}
	cmd.Flags().Int("limit", 0, "print only the first n countries (0 prints all)")
	return cmd
}

func (c *cli) runRank(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	d, err := buildDashboard(cmd.Context(), c.cfg, c.logger)
	if err != nil {
		return err
	}

	entries := d.Ranking().Entries()
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Rank", "Country", "Coefficient", "Trend", "Slope", "First", "Last"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, e := range entries {
		coefficient, trend := "n/a", "flat"
		if e.Defined {
			coefficient = strconv.FormatFloat(e.Coefficient, 'f', 4, 64)
			trend = "falling"
			if e.Rising() {
				trend = "rising"
			}
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			e.Country,
			coefficient,
			trend,
			strconv.FormatFloat(e.Slope, 'f', 2, 64),
			strconv.FormatFloat(e.First, 'f', 2, 64),
			strconv.FormatFloat(e.Last, 'f', 2, 64),
		})
	}
	table.Render()
	return nil
}
