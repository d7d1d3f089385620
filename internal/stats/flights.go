package stats

import (
	"github.com/shopspring/decimal"

	"tamvonku/travel-stats/internal/models"
)

// FlightReport summarizes the flight legs of the transport table: the ticket
// count, the itemized legs and the summed per-person price.
type FlightReport struct {
	Count     int
	Legs      []models.Leg
	TotalCost decimal.Decimal
}

// Empty reports whether no flight legs were found. An empty report is an
// informational condition, never an error.
func (r FlightReport) Empty() bool {
	return r.Count == 0
}

// Flights filters the transport legs to flights (case-insensitive match on
// the transport type) and totals their per-person prices. Legs with an
// unparseable price stay in the itemized list but contribute nothing to the
// total.
func Flights(legs []models.Leg) FlightReport {
	var report FlightReport
	for _, leg := range legs {
		if !leg.IsFlight() {
			continue
		}
		report.Count++
		report.Legs = append(report.Legs, leg)
		if leg.PricePerPerson.Valid {
			report.TotalCost = report.TotalCost.Add(leg.PricePerPerson.Decimal)
		}
	}
	return report
}
