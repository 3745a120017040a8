package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 5, AlignLeft))
	assert.Equal(t, "   ab", pad("ab", 5, AlignRight))
	assert.Equal(t, "abcdef", pad("abcdef", 3, AlignRight))
	assert.Equal(t, "··  ", pad("··", 4, AlignLeft), "width counts display cells, not bytes")
}

func TestTable_Render(t *testing.T) {
	table := NewTable(
		TableColumn{Header: "PICK"},
		TableColumn{Header: "RISK", Align: AlignRight},
	)
	table.AddRow("NYK-2028-1", "12")
	table.AddRow("BOS-2028-2")

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "PICK")
	assert.Contains(t, lines[1], strings.Repeat("─", len("NYK-2028-1")))
	assert.Contains(t, lines[2], "NYK-2028-1    12")
	assert.Contains(t, lines[3], "BOS-2028-2")
}

func TestTable_RenderWithoutColumns(t *testing.T) {
	assert.Empty(t, NewTable().Render())
}

func TestFreshnessLine(t *testing.T) {
	now := time.Date(2027, time.August, 4, 12, 0, 0, 0, time.UTC)
	refreshed := now.Add(-90 * time.Minute)

	assert.Contains(t, freshnessLine(&refreshed, now), "1 hour ago")
	assert.Contains(t, freshnessLine(&refreshed, now), "2027-08-04 10:30 UTC")
	assert.Contains(t, freshnessLine(nil, now), "unknown")
}

func TestFlags(t *testing.T) {
	assert.Equal(t, "SCF!", flags(true, true, true, true))
	assert.Equal(t, "C", flags(false, true, false, false))
	assert.Equal(t, emptyCell, flags(false, false, false, false))
}
