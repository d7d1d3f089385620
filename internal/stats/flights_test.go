package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamvonku/travel-stats/internal/models"
)

func TestFlightsCaseInsensitiveFilter(t *testing.T) {
	legs := []models.Leg{
		{Type: "flight", From: "Vienna", To: "Lisbon", PricePerPerson: nd("123.45")},
		{Type: "Flight", From: "Lisbon", To: "Madrid", PricePerPerson: nd("50")},
		{Type: "FLIGHT", From: "Madrid", To: "Vienna", PricePerPerson: nd("26.55")},
		{Type: "train", From: "Lisbon", To: "Porto", PricePerPerson: nd("25")},
	}

	report := Flights(legs)
	assert.Equal(t, 3, report.Count)
	require.Len(t, report.Legs, 3)
	assert.True(t, report.TotalCost.Equal(decimal.RequireFromString("200")),
		"got %s", report.TotalCost)
}

func TestFlightsInvalidPriceExcludedFromTotal(t *testing.T) {
	legs := []models.Leg{
		{Type: "flight", PricePerPerson: nd("100")},
		{Type: "flight"}, // price did not parse
	}

	report := Flights(legs)
	assert.Equal(t, 2, report.Count)
	assert.True(t, report.TotalCost.Equal(decimal.RequireFromString("100")))
}

func TestFlightsEmpty(t *testing.T) {
	assert.True(t, Flights(nil).Empty())
	assert.True(t, Flights([]models.Leg{{Type: "train"}}).Empty())
}
