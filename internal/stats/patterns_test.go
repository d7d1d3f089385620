package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamvonku/travel-stats/internal/dataset"
	"tamvonku/travel-stats/internal/models"
)

func TestCheckInsByMonth(t *testing.T) {
	table := dataset.Table{
		Schema: fullSchema(),
		Stays: []models.Stay{
			{CheckIn: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
			{CheckIn: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
			{CheckIn: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)},
			{}, // missing date skipped
		},
	}

	counts := CheckInsByMonth(table)
	require.Len(t, counts, 2)
	// calendar order, not frequency order
	assert.Equal(t, time.January, counts[0].Month)
	assert.Equal(t, 1, counts[0].Count)
	assert.Equal(t, time.March, counts[1].Month)
	assert.Equal(t, 2, counts[1].Count)
}

func TestCheckInsByWeekday(t *testing.T) {
	table := dataset.Table{
		Schema: fullSchema(),
		Stays: []models.Stay{
			{CheckIn: time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)},  // Monday
			{CheckIn: time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)}, // Monday
			{CheckIn: time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)},  // Saturday
		},
	}

	counts := CheckInsByWeekday(table)
	require.Len(t, counts, 2)
	// Monday-first ordering
	assert.Equal(t, time.Monday, counts[0].Weekday)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, time.Saturday, counts[1].Weekday)
	assert.Equal(t, 1, counts[1].Count)
}

func TestPatternsWithoutDateColumn(t *testing.T) {
	table := dataset.Table{Schema: dataset.Schema{}}
	assert.Nil(t, CheckInsByMonth(table))
	assert.Nil(t, CheckInsByWeekday(table))
}
