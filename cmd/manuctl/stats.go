package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Gunal77/web-hackathon/aggregate"
	"github.com/Gunal77/web-hackathon/databases"
	"github.com/Gunal77/web-hackathon/models"
	"github.com/Gunal77/web-hackathon/performance"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print statistics over the demo data set",
	}
	cmd.AddCommand(newStatsDistrictsCmd(opts), newStatsDepartmentsCmd(opts), newStatsPerformanceCmd(opts))
	return cmd
}

// seedManus loads the demo data set through the store so derived fields and
// pending days are computed the same way the API does
func seedManus(cmd *cobra.Command, opts *rootOptions) ([]models.Manu, error) {
	db := databases.NewManuDatabase(databases.WithClock(opts.now), databases.WithSeed())
	return db.Find(cmd.Context(), databases.ManuFilter{})
}

func newStatsDistrictsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "districts",
		Short: "Per-district totals and map colours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manus, err := seedManus(cmd, opts)
			if err != nil {
				return err
			}

			t := opts.newTable(cmd.OutOrStdout(), "Districts")
			t.AppendHeader(table.Row{"District", "Total", "High+Critical", "Severe distress", "Avg pending days", "Resolved", "Colour"})
			for _, s := range aggregate.DistrictStats(manus) {
				t.AppendRow(table.Row{s.District, s.Total, s.HighAndCritical, s.SevereDistressCount, s.AveragePendingDays, s.ResolvedCount, s.RiskColor})
			}
			t.AppendFooter(table.Row{"Total", len(manus)})
			t.Render()
			return nil
		},
	}
}

func newStatsDepartmentsCmd(opts *rootOptions) *cobra.Command {
	var district string

	cmd := &cobra.Command{
		Use:   "departments",
		Short: "Department SLA performance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manus, err := seedManus(cmd, opts)
			if err != nil {
				return err
			}

			t := opts.newTable(cmd.OutOrStdout(), "Departments: "+district)
			t.AppendHeader(table.Row{"Department", "Total", "Avg first action", "Avg complete", "SLA breach %", "Performance"})
			for _, p := range performance.Department(manus, district) {
				t.AppendRow(table.Row{p.Department, p.Total, p.AvgTimeToFirstAction, p.AvgTimeToComplete, p.SLABreachPct, p.Performance})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&district, "district", models.AllDistricts, "district to report on")
	return cmd
}

func newStatsPerformanceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "performance",
		Short: "District performance ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manus, err := seedManus(cmd, opts)
			if err != nil {
				return err
			}

			t := opts.newTable(cmd.OutOrStdout(), "District performance")
			t.AppendHeader(table.Row{"District", "Total", "Critical", "Resolved", "Avg resolution days", "Best dept", "Worst dept", "Risk", "Flag"})
			for _, p := range performance.District(manus) {
				flag := ""
				switch {
				case p.IsBest:
					flag = "best"
				case p.NeedsFocus:
					flag = "needs focus"
				}
				t.AppendRow(table.Row{p.District, p.Total, p.Critical, p.Resolved, p.AvgResolutionDays, p.BestDepartment, p.WorstDepartment, p.RiskLevel, flag})
			}
			t.Render()
			return nil
		},
	}
}
