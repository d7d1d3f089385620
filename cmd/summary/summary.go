// Package summary handles the headline trip metrics command
package summary

import (
	"fmt"

	"tamvonku/travel-stats/cmd/common"
	"tamvonku/travel-stats/cmd/root"
	"tamvonku/travel-stats/internal/dataset"
	"tamvonku/travel-stats/internal/stats"

	"github.com/spf13/cobra"
)

var showPatterns bool

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show headline trip metrics",
	Long: `Compute the headline metrics over the accommodation data: days on the
road, total stays, countries visited, total cost, average cost per person and
night, destination counts, booking platforms and workaway projects. Metrics
whose source columns are missing are omitted.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().BoolVar(&showPatterns, "patterns", false, "Also show check-in counts by month and weekday")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Summary command called")

	filter, err := common.BuildFilter(root.SharedFlags.From, root.SharedFlags.To, root.SharedFlags.Countries, root.SharedFlags.Platforms)
	if err != nil {
		root.Log.Fatalf("Invalid filter: %v", err)
	}

	table := common.LoadStays(root.Loader, root.SharedFlags.AccommodationFile, filter, root.Log)
	if table.Empty() {
		fmt.Println("No accommodation data to summarize.")
		return
	}

	s := stats.Summarize(table, root.Cfg.Trip.Travelers)
	for _, metric := range s.Metrics() {
		fmt.Printf("%-26s %v\n", metric.Key, metric.Value)
	}

	if showPatterns {
		printPatterns(table)
	}
}

func printPatterns(table dataset.Table) {
	months := stats.CheckInsByMonth(table)
	if len(months) > 0 {
		fmt.Println("\nCheck-ins by month:")
		for _, m := range months {
			fmt.Printf("%-26s %d\n", m.Month, m.Count)
		}
	}

	weekdays := stats.CheckInsByWeekday(table)
	if len(weekdays) > 0 {
		fmt.Println("\nCheck-ins by weekday:")
		for _, w := range weekdays {
			fmt.Printf("%-26s %d\n", w.Weekday, w.Count)
		}
	}
}
