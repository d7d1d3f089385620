package summary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tamvonku/travel-stats/cmd/summary"
)

func TestSummaryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summary", summary.Cmd.Use)
	assert.Contains(t, summary.Cmd.Short, "trip metrics")
	assert.NotNil(t, summary.Cmd.Run)
}

func TestSummaryCommand_PatternsFlag(t *testing.T) {
	flag := summary.Cmd.Flags().Lookup("patterns")
	assert.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
