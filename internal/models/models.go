// Package models defines the core data structures for the travel statistics
// application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tamvonku/travel-stats/internal/dateutils"
)

// Stay represents one accommodation booking from the travel spreadsheet.
// Dates use the zero time as the missing marker; numeric fields use
// decimal.NullDecimal so a failed coercion nulls the field without dropping
// the row.
type Stay struct {
	ID            int
	Accommodation string
	Country       string
	Location      string
	Destination   string
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        decimal.NullDecimal
	TotalPrice    decimal.NullDecimal
	Persons       decimal.NullDecimal
	Platform      string
}

// HasDates reports whether both check-in and check-out are present
func (s Stay) HasDates() bool {
	return !s.CheckIn.IsZero() && !s.CheckOut.IsZero()
}

// Range returns the check-in/check-out span of the stay
func (s Stay) Range() dateutils.DateRange {
	return dateutils.DateRange{Start: s.CheckIn, End: s.CheckOut}
}

// JoinDestination builds the derived destination label from location and
// country. Missing components are omitted rather than rendered as a textual
// null marker.
func JoinDestination(location, country string) string {
	location = strings.TrimSpace(location)
	country = strings.TrimSpace(country)

	switch {
	case location != "" && country != "":
		return location + ", " + country
	case location != "":
		return location
	default:
		return country
	}
}

// Leg represents one transport booking from the transport spreadsheet.
type Leg struct {
	Type           string
	From           string
	To             string
	PricePerPerson decimal.NullDecimal
	Date           time.Time
}

// IsFlight reports whether the leg's transport type equals "flight",
// case-insensitively.
func (l Leg) IsFlight() bool {
	return strings.EqualFold(l.Type, "flight")
}

// TransportRow mirrors one raw row of data_transport.csv. The tags carry the
// exact header strings of the source file, embedded spaces included.
type TransportRow struct {
	Type  string `csv:"type of transport"`
	From  string `csv:"from"`
	To    string `csv:"to"`
	Price string `csv:"price per person ( EUR )"`
	Date  string `csv:"date"`
}

// CountrySummary is one row of the per-country grouped summary. Nights are
// adjusted nights (halved for single-traveler stays); the two averages are
// rounded to two decimal places for display.
type CountrySummary struct {
	Country              string          `csv:"country"`
	Nights               decimal.Decimal `csv:"nights"`
	TotalCost            decimal.Decimal `csv:"total price of stay"`
	AverageCost          decimal.Decimal `csv:"average_cost"`
	PaidNights           decimal.Decimal `csv:"paid_nights"`
	AvgCostPaidNightPers decimal.Decimal `csv:"avg_cost_paid_night_person"`
}

// CountryCode pairs a resolvable country name with its ISO-3 code for map
// rendering.
type CountryCode struct {
	Country string
	ISO3    string
}
