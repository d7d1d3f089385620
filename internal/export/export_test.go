package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamvonku/travel-stats/internal/models"
)

func nd(value string) decimal.NullDecimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func date(day, month, year int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "filtered_accommodation_data_20260307.csv", DefaultFilename(now))
}

func TestWriteStays(t *testing.T) {
	stays := []models.Stay{
		{
			Accommodation: "Hotel Lume",
			Country:       "France",
			Location:      "Paris",
			CheckIn:       date(1, 6, 2024),
			CheckOut:      date(4, 6, 2024),
			Nights:        nd("3"),
			TotalPrice:    nd("150"),
			Persons:       nd("2"),
			Platform:      "Booking",
		},
		{
			Accommodation: "Farm stay",
			Country:       "Germany",
			Platform:      "Workaway",
		},
	}

	csvFile := filepath.Join(t.TempDir(), "out", "stays.csv")
	require.NoError(t, WriteStays(stays, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "accommodation,country,location,check in,check out,nights,total price of stay,persons,platform")
	assert.Contains(t, content, "Hotel Lume,France,Paris,01.06.2024,04.06.2024,3.00,150.00,2.00,Booking")
	assert.Contains(t, content, "Farm stay,Germany,,,,,,,Workaway")
}

func TestWriteStaysNil(t *testing.T) {
	err := WriteStays(nil, filepath.Join(t.TempDir(), "stays.csv"))
	assert.Error(t, err)
}

func TestWriteStaysCustomDelimiter(t *testing.T) {
	SetDelimiter(';')
	defer SetDelimiter(',')

	stays := []models.Stay{{Accommodation: "Hostel", Country: "Spain"}}
	csvFile := filepath.Join(t.TempDir(), "stays.csv")
	require.NoError(t, WriteStays(stays, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hostel;Spain")
}

func TestWriteCountrySummary(t *testing.T) {
	rows := []models.CountrySummary{
		{
			Country:              "France",
			Nights:               decimal.NewFromInt(5),
			TotalCost:            decimal.NewFromInt(250),
			AverageCost:          decimal.NewFromInt(25),
			PaidNights:           decimal.NewFromInt(5),
			AvgCostPaidNightPers: decimal.NewFromInt(25),
		},
	}

	csvFile := filepath.Join(t.TempDir(), "countries.csv")
	require.NoError(t, WriteCountrySummary(rows, csvFile))

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "country,nights,total price of stay,average_cost,paid_nights,avg_cost_paid_night_person")
	assert.Contains(t, content, "France,5,250,25,5,25")
}
