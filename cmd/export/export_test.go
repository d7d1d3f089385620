package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	exportcmd "tamvonku/travel-stats/cmd/export"
)

func TestExportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "export", exportcmd.Cmd.Use)
	assert.Contains(t, exportcmd.Cmd.Short, "filtered")
	assert.NotNil(t, exportcmd.Cmd.Run)
}

func TestExportCommand_OutputFlag(t *testing.T) {
	flag := exportcmd.Cmd.Flags().Lookup("output")
	assert.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
}
