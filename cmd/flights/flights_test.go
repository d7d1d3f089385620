package flights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tamvonku/travel-stats/cmd/flights"
)

func TestFlightsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "flights", flights.Cmd.Use)
	assert.Contains(t, flights.Cmd.Short, "flight")
	assert.NotNil(t, flights.Cmd.Run)
}
