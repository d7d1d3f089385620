// Package stats derives the dashboard's summary metrics, per-country
// grouping and flight report from the loaded tables.
package stats

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"tamvonku/travel-stats/internal/dataset"
	"tamvonku/travel-stats/internal/dateutils"
	"tamvonku/travel-stats/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Metric is one named summary value, ordered for display.
type Metric struct {
	Key   string
	Value interface{}
}

// Summary holds the dashboard's headline metrics. Each metric is computed
// only when its prerequisite columns exist; the Has flags record which ones
// were computable so absent metrics are omitted rather than zero-valued.
type Summary struct {
	DaysOnRoad    int
	HasDaysOnRoad bool

	TotalStays    int
	HasTotalStays bool

	CountriesVisited int
	HasCountries     bool

	TotalCost            decimal.Decimal
	AvgPerPersonPerNight decimal.Decimal
	HasCost              bool

	UniqueDestinations int
	TopDestination     string
	HasDestinations    bool

	BookingPlatforms int
	HasPlatforms     bool

	WorkawayProjects int
	HasWorkaway      bool
}

// Summarize computes the summary metrics over the (already filtered) table.
// travelers is the per-person cost divisor.
func Summarize(table dataset.Table, travelers int) Summary {
	var s Summary
	if table.Empty() {
		return s
	}
	if travelers < 1 {
		travelers = 1
	}
	schema := table.Schema

	var span dateutils.DateRange
	datedRows := 0
	for _, stay := range table.Stays {
		if stay.HasDates() {
			span = span.Merge(stay.Range())
			datedRows++
		}
	}
	if datedRows > 0 {
		s.DaysOnRoad = span.Days()
		s.HasDaysOnRoad = true
	}

	if schema.HasAccommodation {
		s.TotalStays = distinctCount(table, func(stay models.Stay) string { return stay.Accommodation })
		s.HasTotalStays = true
	}

	if schema.HasCountry {
		s.CountriesVisited = distinctCount(table, func(stay models.Stay) string { return stay.Country })
		s.HasCountries = true
	}

	if schema.HasCost() {
		total := decimal.Zero
		for _, stay := range table.Stays {
			if stay.TotalPrice.Valid {
				total = total.Add(stay.TotalPrice.Decimal)
			}
		}
		s.TotalCost = total

		// When days_on_road is absent the divisor degrades to 1 so the
		// average still renders instead of disappearing.
		days := decimal.NewFromInt(1)
		if s.HasDaysOnRoad && s.DaysOnRoad != 0 {
			days = decimal.NewFromInt(int64(s.DaysOnRoad))
		}
		s.AvgPerPersonPerNight = total.Div(decimal.NewFromInt(int64(travelers))).Div(days)
		s.HasCost = true
	}

	if schema.HasDestination() {
		s.UniqueDestinations, s.TopDestination = destinationStats(table)
		s.HasDestinations = true
	}

	if schema.HasPlatform() {
		s.BookingPlatforms = distinctCount(table, func(stay models.Stay) string { return stay.Platform })
		s.HasPlatforms = true

		if schema.HasAccommodation {
			s.WorkawayProjects = workawayProjects(table)
			s.HasWorkaway = true
		}
	}

	return s
}

// Metrics returns the computed metrics in display order, omitting any metric
// whose prerequisite columns were absent.
func (s Summary) Metrics() []Metric {
	var metrics []Metric
	if s.HasDaysOnRoad {
		metrics = append(metrics, Metric{"days_on_road", s.DaysOnRoad})
	}
	if s.HasTotalStays {
		metrics = append(metrics, Metric{"total_stays", s.TotalStays})
	}
	if s.HasCountries {
		metrics = append(metrics, Metric{"total_countries_visited", s.CountriesVisited})
	}
	if s.HasCost {
		metrics = append(metrics, Metric{"total_cost", s.TotalCost})
		metrics = append(metrics, Metric{"avg_per_person_per_night", s.AvgPerPersonPerNight})
	}
	if s.HasDestinations {
		metrics = append(metrics, Metric{"unique_destinations", s.UniqueDestinations})
		metrics = append(metrics, Metric{"top_destination", s.TopDestination})
	}
	if s.HasPlatforms {
		metrics = append(metrics, Metric{"booking_platforms", s.BookingPlatforms})
	}
	if s.HasWorkaway {
		metrics = append(metrics, Metric{"unique_workaway_projects", s.WorkawayProjects})
	}
	return metrics
}

func distinctCount(table dataset.Table, value func(models.Stay) string) int {
	seen := make(map[string]bool)
	for _, stay := range table.Stays {
		if v := value(stay); v != "" {
			seen[v] = true
		}
	}
	return len(seen)
}

// destinationStats counts distinct destination values and finds the most
// frequent one. Frequency ties resolve to the value seen first in row order.
func destinationStats(table dataset.Table) (int, string) {
	counts := make(map[string]int)
	var firstSeen []string
	for _, stay := range table.Stays {
		v := table.Schema.DestinationValue(stay)
		if v == "" {
			continue
		}
		if counts[v] == 0 {
			firstSeen = append(firstSeen, v)
		}
		counts[v]++
	}

	top := ""
	best := 0
	for _, v := range firstSeen {
		if counts[v] > best {
			best = counts[v]
			top = v
		}
	}

	return len(counts), top
}

func workawayProjects(table dataset.Table) int {
	seen := make(map[string]bool)
	for _, stay := range table.Stays {
		if strings.EqualFold(stay.Platform, "workaway") && stay.Accommodation != "" {
			seen[stay.Accommodation] = true
		}
	}
	return len(seen)
}
