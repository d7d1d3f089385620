package common

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamvonku/travel-stats/internal/dataset"
)

func TestBuildFilter(t *testing.T) {
	f, err := BuildFilter("01.06.2024", "30.06.2024", []string{"France"}, []string{"Booking"})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), f.Dates.Start)
	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), f.Dates.End)
	assert.Equal(t, []string{"France"}, f.Countries)
	assert.Equal(t, []string{"Booking"}, f.Platforms)
}

func TestBuildFilterEmpty(t *testing.T) {
	f, err := BuildFilter("", "", nil, nil)
	require.NoError(t, err)
	assert.True(t, f.IsZero())
}

func TestBuildFilterInvalidDate(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"iso from date", "2024-06-01", ""},
		{"garbage to date", "", "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildFilter(tt.from, tt.to, nil, nil)
			assert.Error(t, err)
		})
	}
}

func TestBuildFilterReversedRange(t *testing.T) {
	_, err := BuildFilter("30.06.2024", "01.06.2024", nil, nil)
	assert.Error(t, err)
}

func TestLoadStaysMissingFileDegradesToEmpty(t *testing.T) {
	loader := dataset.NewLoader(false)
	log := logrus.New()

	table := LoadStays(loader, filepath.Join(t.TempDir(), "absent.csv"), dataset.Filter{}, log)
	assert.True(t, table.Empty())
}
