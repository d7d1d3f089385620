package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamvonku/travel-stats/internal/dataset"
	"tamvonku/travel-stats/internal/models"
)

func nd(value string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(value), Valid: true}
}

func date(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func fullSchema() dataset.Schema {
	return dataset.Schema{
		Cost:             "total price of stay",
		Date:             "check in",
		Destination:      "destination",
		Platform:         "platform",
		HasAccommodation: true,
		HasCountry:       true,
		HasLocation:      true,
		HasCheckIn:       true,
		HasCheckOut:      true,
		HasNights:        true,
		HasPersons:       true,
	}
}

func TestSummarizeDaysOnRoad(t *testing.T) {
	table := dataset.Table{
		Schema: fullSchema(),
		Stays: []models.Stay{
			{Accommodation: "A", CheckIn: date(1), CheckOut: date(3)},
			{Accommodation: "B", CheckIn: date(3), CheckOut: date(5)},
		},
	}

	s := Summarize(table, 2)
	require.True(t, s.HasDaysOnRoad)
	// span is inclusive of both endpoints
	assert.Equal(t, 5, s.DaysOnRoad)
}

func TestSummarizeDaysOnRoadOmittedWithoutDates(t *testing.T) {
	table := dataset.Table{
		Schema: fullSchema(),
		Stays: []models.Stay{
			{Accommodation: "A", CheckIn: date(1)}, // check-out missing
			{Accommodation: "B"},
		},
	}

	s := Summarize(table, 2)
	assert.False(t, s.HasDaysOnRoad)

	for _, m := range s.Metrics() {
		assert.NotEqual(t, "days_on_road", m.Key)
	}
}

func TestSummarizeCostMetrics(t *testing.T) {
	table := dataset.Table{
		Schema: fullSchema(),
		Stays: []models.Stay{
			{Accommodation: "A", CheckIn: date(1), CheckOut: date(5), TotalPrice: nd("300")},
			{Accommodation: "B", TotalPrice: nd("200")},
			{Accommodation: "C"}, // missing price excluded from the sum
		},
	}

	s := Summarize(table, 2)
	require.True(t, s.HasCost)
	assert.True(t, s.TotalCost.Equal(decimal.RequireFromString("500")))
	// 500 / 2 travelers / 5 days
	assert.True(t, s.AvgPerPersonPerNight.Equal(decimal.RequireFromString("50")),
		"got %s", s.AvgPerPersonPerNight)
}

func TestSummarizeCostAverageWithoutDaysOnRoad(t *testing.T) {
	table := dataset.Table{
		Schema: fullSchema(),
		Stays: []models.Stay{
			{Accommodation: "A", TotalPrice: nd("100")},
		},
	}

	s := Summarize(table, 2)
	require.True(t, s.HasCost)
	// the day divisor degrades to 1 when days_on_road is absent
	assert.True(t, s.AvgPerPersonPerNight.Equal(decimal.RequireFromString("50")))
}

func TestSummarizeDistinctCounts(t *testing.T) {
	table := dataset.Table{
		Schema: fullSchema(),
		Stays: []models.Stay{
			{Accommodation: "Casa Azul", Country: "Portugal"},
			{Accommodation: "Casa Azul", Country: "Portugal"},
			{Accommodation: "Alpenhof", Country: "Austria"},
			{Accommodation: "", Country: ""}, // missing values don't count
		},
	}

	s := Summarize(table, 2)
	assert.Equal(t, 2, s.TotalStays)
	assert.Equal(t, 2, s.CountriesVisited)
}

func TestSummarizeTopDestinationTieBreak(t *testing.T) {
	table := dataset.Table{
		Schema: fullSchema(),
		Stays: []models.Stay{
			{Destination: "Porto, Portugal"},
			{Destination: "Lisbon, Portugal"},
			{Destination: "Lisbon, Portugal"},
			{Destination: "Porto, Portugal"},
		},
	}

	s := Summarize(table, 2)
	require.True(t, s.HasDestinations)
	assert.Equal(t, 2, s.UniqueDestinations)
	// equal frequency resolves to the first-seen value
	assert.Equal(t, "Porto, Portugal", s.TopDestination)
}

func TestSummarizeWorkawayProjects(t *testing.T) {
	table := dataset.Table{
		Schema: fullSchema(),
		Stays: []models.Stay{
			{Accommodation: "Green Farm", Platform: "workaway"},
			{Accommodation: "Green Farm", Platform: "Workaway"},
			{Accommodation: "Olive Grove", Platform: "WORKAWAY"},
			{Accommodation: "Casa Azul", Platform: "Booking"},
		},
	}

	s := Summarize(table, 2)
	require.True(t, s.HasWorkaway)
	assert.Equal(t, 2, s.WorkawayProjects)
	assert.Equal(t, 3, s.BookingPlatforms)
}

func TestSummarizeEmptyTable(t *testing.T) {
	s := Summarize(dataset.Table{Schema: fullSchema()}, 2)
	assert.Empty(t, s.Metrics())
}

func TestMetricsOrdering(t *testing.T) {
	table := dataset.Table{
		Schema: fullSchema(),
		Stays: []models.Stay{
			{Accommodation: "A", Country: "Portugal", Destination: "Lisbon, Portugal",
				Platform: "Booking", CheckIn: date(1), CheckOut: date(2), TotalPrice: nd("100")},
		},
	}

	var keys []string
	for _, m := range Summarize(table, 2).Metrics() {
		keys = append(keys, m.Key)
	}

	assert.Equal(t, []string{
		"days_on_road",
		"total_stays",
		"total_countries_visited",
		"total_cost",
		"avg_per_person_per_night",
		"unique_destinations",
		"top_destination",
		"booking_platforms",
		"unique_workaway_projects",
	}, keys)
}
