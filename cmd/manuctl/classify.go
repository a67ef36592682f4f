package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Gunal77/web-hackathon/classify"
	"github.com/Gunal77/web-hackathon/models"
	"github.com/Gunal77/web-hackathon/scoring"
)

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var (
		days       int
		department string
	)

	cmd := &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify a grievance description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--days must not be negative, got %d", days)
			}
			dept := models.DepartmentCategory(department)
			if !dept.Valid() {
				return fmt.Errorf("unknown department %q", department)
			}

			text := strings.Join(args, " ")
			d := scoring.Derive(text, days, dept)

			critical := "-"
			if c := classify.CriticalSentimentType(text); c != nil {
				critical = string(*c)
			}

			t := opts.newTable(cmd.OutOrStdout(), "Classification")
			t.AppendRows([]table.Row{
				{"Sentiment", d.Sentiment},
				{"Critical type", critical},
				{"Risk level", d.RiskLevel},
				{"Priority score", d.PriorityScore},
				{"Lifecycle (submitted)", scoring.LifecycleStatus(models.StatusSubmitted, d.RiskLevel, days)},
				{"Lifecycle (in progress)", scoring.LifecycleStatus(models.StatusInProgress, d.RiskLevel, days)},
				{"Summary", classify.ShortSummary(text, classify.DefaultSummaryLength)},
			})
			t.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "days the manu has been pending")
	cmd.Flags().StringVar(&department, "department", string(models.DepartmentRevenue), "department category")
	return cmd
}
