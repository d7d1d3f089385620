package dataset

import (
	"time"

	"tamvonku/travel-stats/internal/models"
)

// Header alias lists for the logical columns, highest priority first. The
// lists mirror the headers the source spreadsheets have used over time.
var (
	costCandidates        = []string{"total price of stay", "cost", "price", "amount", "total_cost", "expense"}
	dateCandidates        = []string{"check in", "check out", "date", "departure_date", "arrival_date", "booking_date", "travel_date"}
	destinationCandidates = []string{"destination", "city", "country", "location"}
	platformCandidates    = []string{"platform", "travel_type", "type", "category", "mode"}
)

// Schema records which logical columns the loaded table provides and which
// source header won each alias list. It is resolved once at load time;
// aggregations consult it instead of re-scanning headers.
type Schema struct {
	Cost        string // winning cost header, "" when absent
	Date        string // winning date header
	Destination string // winning destination header
	Platform    string // winning platform header

	HasAccommodation bool
	HasCountry       bool
	HasLocation      bool
	HasCheckIn       bool
	HasCheckOut      bool
	HasNights        bool
	HasPersons       bool
	HasID            bool
}

// DetectSchema resolves the alias lists against the header row of the
// accommodation file. The derived destination column counts as present
// whenever both country and location exist.
func DetectSchema(headers []string) Schema {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	s := Schema{
		HasAccommodation: present["accommodation"],
		HasCountry:       present["country"],
		HasLocation:      present["location"] || present["city"],
		HasCheckIn:       present["check in"],
		HasCheckOut:      present["check out"],
		HasNights:        present["nights"],
		HasPersons:       present["persons"] || present["number of persons"],
		HasID:            present["id"],
	}

	if present["country"] && present["location"] {
		present["destination"] = true
	}

	s.Cost = firstMatch(present, costCandidates)
	s.Date = firstMatch(present, dateCandidates)
	s.Destination = firstMatch(present, destinationCandidates)
	s.Platform = firstMatch(present, platformCandidates)

	return s
}

func firstMatch(present map[string]bool, candidates []string) string {
	for _, c := range candidates {
		if present[c] {
			return c
		}
	}
	return ""
}

// HasCost reports whether a cost-like column was resolved
func (s Schema) HasCost() bool {
	return s.Cost != ""
}

// HasDestination reports whether a destination-like column was resolved
func (s Schema) HasDestination() bool {
	return s.Destination != ""
}

// HasPlatform reports whether a platform-like column was resolved
func (s Schema) HasPlatform() bool {
	return s.Platform != ""
}

// HasDate reports whether a date-like column was resolved
func (s Schema) HasDate() bool {
	return s.Date != ""
}

// DestinationValue returns the stay field backing the resolved destination
// column.
func (s Schema) DestinationValue(stay models.Stay) string {
	switch s.Destination {
	case "destination":
		return stay.Destination
	case "city", "location":
		return stay.Location
	case "country":
		return stay.Country
	}
	return ""
}

// DateValue returns the stay field backing the resolved date column.
func (s Schema) DateValue(stay models.Stay) time.Time {
	if s.Date == "check out" {
		return stay.CheckOut
	}
	return stay.CheckIn
}

// Table is the loaded accommodation dataset: the stay records plus the
// schema they were resolved against.
type Table struct {
	Stays  []models.Stay
	Schema Schema
}

// Empty reports whether the table holds no rows
func (t Table) Empty() bool {
	return len(t.Stays) == 0
}

// Len returns the number of stay rows
func (t Table) Len() int {
	return len(t.Stays)
}
