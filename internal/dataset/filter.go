package dataset

import (
	"strings"

	"tamvonku/travel-stats/internal/dateutils"
	"tamvonku/travel-stats/internal/models"
)

// Filter re-slices a loaded table the way the dashboard's sidebar does. Each
// criterion is optional; a zero Filter returns the table unchanged. Applying
// a filter is a pure function: the input table is never mutated.
type Filter struct {
	Dates     dateutils.DateRange
	Countries []string
	Platforms []string
}

// IsZero reports whether the filter has no active criteria
func (f Filter) IsZero() bool {
	return f.Dates.IsZero() && len(f.Countries) == 0 && len(f.Platforms) == 0
}

// Apply returns a new table containing only the stays matching every active
// criterion. Rows without a date are excluded only while a date bound is
// set; with no date bound they always pass.
func (f Filter) Apply(t Table) Table {
	if f.IsZero() {
		return t
	}

	countries := lowerSet(f.Countries)
	platforms := lowerSet(f.Platforms)

	filtered := make([]models.Stay, 0, len(t.Stays))
	for _, stay := range t.Stays {
		if !f.Dates.IsZero() {
			date := t.Schema.DateValue(stay)
			if date.IsZero() || !f.Dates.Contains(date) {
				continue
			}
		}
		if countries != nil && !countries[strings.ToLower(stay.Country)] {
			continue
		}
		if platforms != nil && !platforms[strings.ToLower(stay.Platform)] {
			continue
		}
		filtered = append(filtered, stay)
	}

	return Table{Stays: filtered, Schema: t.Schema}
}

func lowerSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = true
	}
	return set
}
