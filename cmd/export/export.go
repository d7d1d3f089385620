// Package export handles the filtered-view CSV download command
package export

import (
	"fmt"
	"time"

	"tamvonku/travel-stats/cmd/common"
	"tamvonku/travel-stats/cmd/root"
	"tamvonku/travel-stats/internal/export"

	"github.com/spf13/cobra"
)

var outputFile string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered accommodation view as CSV",
	Long: `Write the accommodation data, after applying the filter flags, to a CSV
file. Without --output the file is named filtered_accommodation_data_YYYYMMDD.csv
with the current date.`,
	Run: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file (default: date-stamped name)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Export command called")

	filter, err := common.BuildFilter(root.SharedFlags.From, root.SharedFlags.To, root.SharedFlags.Countries, root.SharedFlags.Platforms)
	if err != nil {
		root.Log.Fatalf("Invalid filter: %v", err)
	}

	table := common.LoadStays(root.Loader, root.SharedFlags.AccommodationFile, filter, root.Log)
	if table.Empty() {
		fmt.Println("No accommodation data to export.")
		return
	}

	target := outputFile
	if target == "" {
		target = export.DefaultFilename(time.Now())
	}

	if err := export.WriteStays(table.Stays, target); err != nil {
		root.Log.Fatalf("Failed to export accommodation data: %v", err)
	}

	fmt.Printf("Exported %d stays to %s\n", table.Len(), target)
}
