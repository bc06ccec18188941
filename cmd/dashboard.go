package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/safetydash/dashboard"
)

var (
	recentRecalls    int
	topManufacturers int
	mostRecalled     int
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show recall analytics",
	Long: `Fetch the dashboard analytics: recent recalls, recalls by manufacturer,
most recalled vehicles, recalls by year, crash test performance and rollover
resistance.`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().IntVar(&recentRecalls, "recent-recalls", 0, "number of recent recalls (default from config)")
	dashboardCmd.Flags().IntVar(&topManufacturers, "top-manufacturers", 0, "number of manufacturers (default from config)")
	dashboardCmd.Flags().IntVar(&mostRecalled, "most-recalled", 0, "number of most recalled vehicles (default from config)")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	params := dashboard.AnalyticsParams{
		RecentRecallsCount:        cfg.Dashboard.RecentRecallsCount,
		TopManufacturersCount:     cfg.Dashboard.TopManufacturersCount,
		MostRecalledVehiclesCount: cfg.Dashboard.MostRecalledVehiclesCount,
	}
	if cmd.Flags().Changed("recent-recalls") {
		params.RecentRecallsCount = recentRecalls
	}
	if cmd.Flags().Changed("top-manufacturers") {
		params.TopManufacturersCount = topManufacturers
	}
	if cmd.Flags().Changed("most-recalled") {
		params.MostRecalledVehiclesCount = mostRecalled
	}

	resp, err := dashboardClient.GetAnalytics(cmd.Context(), params)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatAnalytics(&resp.Data))
	return nil
}
