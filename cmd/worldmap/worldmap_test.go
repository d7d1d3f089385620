package worldmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tamvonku/travel-stats/cmd/worldmap"
)

func TestMapCommand_Metadata(t *testing.T) {
	assert.Equal(t, "map", worldmap.Cmd.Use)
	assert.Contains(t, worldmap.Cmd.Short, "ISO-3")
	assert.NotNil(t, worldmap.Cmd.Run)
}
