package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggedInReport_LastSegment(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 12, 28, 18, 0, 0, 0, time.UTC)
	report := &LoggedInReport{
		Date: "2025-12-28",
		Host: "intranet",
		Segments: []LoggedInSegment{
			{Generated: base.Add(5 * time.Minute), Total: 2},
			// Out of order on purpose: the latest Generated wins regardless of
			// slice position.
			{Generated: base.Add(10 * time.Minute), Total: 3},
			{Generated: base, Total: 1},
		},
	}

	last := report.LastSegment()
	require.NotNil(t, last)
	assert.True(t, last.Generated.Equal(base.Add(10*time.Minute)))
	assert.Equal(t, 3, last.Total)
}

func TestLoggedInReport_LastSegment_Empty(t *testing.T) {
	t.Parallel()

	report := &LoggedInReport{Date: "2025-12-28", Host: "intranet"}
	assert.Nil(t, report.LastSegment())
}
