// Package countries handles the per-country summary command
package countries

import (
	"fmt"

	"tamvonku/travel-stats/cmd/common"
	"tamvonku/travel-stats/cmd/root"
	"tamvonku/travel-stats/internal/export"
	"tamvonku/travel-stats/internal/stats"

	"github.com/spf13/cobra"
)

var outputFile string

// Cmd represents the countries command
var Cmd = &cobra.Command{
	Use:   "countries",
	Short: "Show the per-country stay summary",
	Long: `Group the accommodation data by country and show nights, total cost,
average cost per night and person, paid nights and the paid-night average for
each country, in first-stay order. With --output the table is also written as
CSV.`,
	Run: countriesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the summary to this CSV file")
}

func countriesFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Countries command called")

	filter, err := common.BuildFilter(root.SharedFlags.From, root.SharedFlags.To, root.SharedFlags.Countries, root.SharedFlags.Platforms)
	if err != nil {
		root.Log.Fatalf("Invalid filter: %v", err)
	}

	table := common.LoadStays(root.Loader, root.SharedFlags.AccommodationFile, filter, root.Log)
	if table.Empty() {
		fmt.Println("No accommodation data to group.")
		return
	}

	rows, err := stats.CountrySummary(table, root.Cfg.Trip.Travelers)
	if err != nil {
		root.Log.Fatalf("Cannot build country summary: %v", err)
	}
	if len(rows) == 0 {
		fmt.Println("No accommodation data to group.")
		return
	}

	fmt.Printf("%-24s %10s %12s %10s %12s %10s\n",
		"country", "nights", "total cost", "avg cost", "paid nights", "avg paid")
	for _, row := range rows {
		fmt.Printf("%-24s %10s %12s %10s %12s %10s\n",
			row.Country,
			row.Nights.String(),
			row.TotalCost.StringFixed(2),
			row.AverageCost.StringFixed(2),
			row.PaidNights.String(),
			row.AvgCostPaidNightPers.StringFixed(2))
	}

	if outputFile != "" {
		if err := export.WriteCountrySummary(rows, outputFile); err != nil {
			root.Log.Fatalf("Failed to write country summary: %v", err)
		}
		fmt.Printf("Country summary written to %s\n", outputFile)
	}
}
