// Package flights handles the flight metrics command
package flights

import (
	"errors"
	"fmt"

	"tamvonku/travel-stats/cmd/root"
	"tamvonku/travel-stats/internal/dataerror"
	"tamvonku/travel-stats/internal/dateutils"
	"tamvonku/travel-stats/internal/stats"

	"github.com/spf13/cobra"
)

// Cmd represents the flights command
var Cmd = &cobra.Command{
	Use:   "flights",
	Short: "Show flight metrics from the transport data",
	Long: `Filter the transport data to flight legs and show the number of
flights, each leg's route, date and per-person price, and the total flight
cost per person.`,
	Run: flightsFunc,
}

func flightsFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Flights command called")

	legs, err := root.Loader.LoadLegs(root.SharedFlags.TransportFile)
	if err != nil {
		var notFound *dataerror.FileNotFoundError
		if errors.As(err, &notFound) {
			root.Log.Errorf("Transport file not found: %s", root.SharedFlags.TransportFile)
		} else {
			root.Log.WithError(err).Errorf("Failed to load transport file: %s", root.SharedFlags.TransportFile)
		}
		fmt.Println("No transport data available.")
		return
	}

	report := stats.Flights(legs)
	if report.Empty() {
		fmt.Println("No flights found in the transport data.")
		return
	}

	fmt.Printf("Flights: %d\n", report.Count)
	for _, leg := range report.Legs {
		date := dateutils.ToEuropean(leg.Date)
		price := ""
		if leg.PricePerPerson.Valid {
			price = leg.PricePerPerson.Decimal.StringFixed(2)
		}
		fmt.Printf("%-12s %-20s -> %-20s %10s\n", date, leg.From, leg.To, price)
	}
	fmt.Printf("Total per person: %s\n", report.TotalCost.StringFixed(2))
}
