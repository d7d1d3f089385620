package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"tamvonku/travel-stats/internal/dataerror"
	"tamvonku/travel-stats/internal/dataset"
	"tamvonku/travel-stats/internal/models"
)

var two = decimal.NewFromInt(2)

// CountrySummary groups stays by country, summing adjusted nights and total
// cost and deriving the per-person cost averages. Groups are ordered by the
// first-seen sequence id per country, ascending. Rows failing coercion on
// country, nights or total price are dropped with a logged warning.
func CountrySummary(table dataset.Table, travelers int) ([]models.CountrySummary, error) {
	schema := table.Schema
	if !schema.HasCountry {
		return nil, &dataerror.MissingColumnError{Operation: "country summary", Column: "country"}
	}
	if !schema.HasNights {
		return nil, &dataerror.MissingColumnError{Operation: "country summary", Column: "nights"}
	}
	if !schema.HasCost() {
		return nil, &dataerror.MissingColumnError{Operation: "country summary", Column: "total price"}
	}
	if travelers < 1 {
		travelers = 1
	}
	divisor := decimal.NewFromInt(int64(travelers))

	type group struct {
		firstID    int
		nights     decimal.Decimal
		totalCost  decimal.Decimal
		paidNights decimal.Decimal
	}
	groups := make(map[string]*group)
	dropped := 0

	for _, stay := range table.Stays {
		if stay.Country == "" || !stay.Nights.Valid || !stay.TotalPrice.Valid {
			dropped++
			continue
		}

		adjusted := adjustedNights(stay, schema.HasPersons)

		g, ok := groups[stay.Country]
		if !ok {
			g = &group{firstID: stay.ID}
			groups[stay.Country] = g
		}
		g.nights = g.nights.Add(adjusted)
		g.totalCost = g.totalCost.Add(stay.TotalPrice.Decimal)
		if stay.TotalPrice.Decimal.IsPositive() {
			g.paidNights = g.paidNights.Add(adjusted)
		}
	}

	if dropped > 0 {
		log.WithField("rows", dropped).Warn("Dropped rows with unparseable country, nights or price from country summary")
	}

	countries := make([]string, 0, len(groups))
	for country := range groups {
		countries = append(countries, country)
	}
	sort.Slice(countries, func(i, j int) bool {
		return groups[countries[i]].firstID < groups[countries[j]].firstID
	})

	rows := make([]models.CountrySummary, 0, len(countries))
	for _, country := range countries {
		g := groups[country]

		avgCost := decimal.Zero
		if !g.nights.IsZero() {
			avgCost = g.totalCost.Div(g.nights).Div(divisor).Round(2)
		}

		avgPaid := decimal.Zero
		if g.paidNights.IsPositive() {
			avgPaid = g.totalCost.Div(g.paidNights).Div(divisor).Round(2)
		}

		rows = append(rows, models.CountrySummary{
			Country:              country,
			Nights:               g.nights,
			TotalCost:            g.totalCost,
			AverageCost:          avgCost,
			PaidNights:           g.paidNights,
			AvgCostPaidNightPers: avgPaid,
		})
	}

	return rows, nil
}

// adjustedNights halves the nights value when the stay is attributed to
// exactly one traveler. Without a persons column the raw nights stand.
func adjustedNights(stay models.Stay, hasPersons bool) decimal.Decimal {
	nights := stay.Nights.Decimal
	if hasPersons && stay.Persons.Valid && stay.Persons.Decimal.Equal(decimal.NewFromInt(1)) {
		return nights.Div(two)
	}
	return nights
}
