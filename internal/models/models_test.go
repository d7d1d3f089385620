package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJoinDestination(t *testing.T) {
	tests := []struct {
		name     string
		location string
		country  string
		expected string
	}{
		{"Both present", "Lisbon", "Portugal", "Lisbon, Portugal"},
		{"Missing country", "Lisbon", "", "Lisbon"},
		{"Missing location", "", "Portugal", "Portugal"},
		{"Both missing", "", "", ""},
		{"Whitespace counts as missing", "  ", "Portugal", "Portugal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, JoinDestination(tc.location, tc.country))
		})
	}
}

func TestStayHasDates(t *testing.T) {
	in := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	assert.True(t, Stay{CheckIn: in, CheckOut: out}.HasDates())
	assert.False(t, Stay{CheckIn: in}.HasDates())
	assert.False(t, Stay{}.HasDates())
}

func TestLegIsFlight(t *testing.T) {
	assert.True(t, Leg{Type: "flight"}.IsFlight())
	assert.True(t, Leg{Type: "Flight"}.IsFlight())
	assert.True(t, Leg{Type: "FLIGHT"}.IsFlight())
	assert.False(t, Leg{Type: "train"}.IsFlight())
	assert.False(t, Leg{}.IsFlight())
}
