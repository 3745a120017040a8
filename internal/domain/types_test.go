package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSelection(t *testing.T) {
	known := func(team TeamCode) bool {
		return team == "NYK" || team == "LAL" || team == "BOS"
	}

	tests := []struct {
		name     string
		raw      RawSelection
		known    func(TeamCode) bool
		expected Selection
	}{
		{
			name: "empty parameters use defaults",
			raw:  RawSelection{},
			expected: Selection{
				View:  ViewPicks,
				Year:  2026,
				Round: RoundAll,
				Sort:  SortBoard,
				Lens:  LensAll,
			},
		},
		{
			name: "recognized values are kept",
			raw: RawSelection{
				View:         "grid",
				Year:         "2028",
				Round:        "1",
				Team:         "nyk",
				Sort:         "risk",
				Lens:         "critical",
				SelectedType: "pick",
				SelectedKey:  "NYK-2028-1",
			},
			known: known,
			expected: Selection{
				View:         ViewGrid,
				Year:         2028,
				Round:        1,
				Team:         "NYK",
				Sort:         SortRisk,
				Lens:         LensCritical,
				SelectedType: SelectedTypePick,
				SelectedKey:  "NYK-2028-1",
			},
		},
		{
			name: "unrecognized values fall back",
			raw: RawSelection{
				View:         "heatmap",
				Year:         "next",
				Round:        "3",
				Team:         "XYZ",
				Sort:         "alpha",
				Lens:         "spicy",
				SelectedType: "player",
				SelectedKey:  "42",
			},
			known: known,
			expected: Selection{
				View:  ViewPicks,
				Year:  2026,
				Round: RoundAll,
				Sort:  SortBoard,
				Lens:  LensAll,
			},
		},
		{
			name: "round all is accepted explicitly",
			raw:  RawSelection{Round: "all", View: "SELECTIONS", Lens: "at_risk"},
			expected: Selection{
				View:  ViewSelections,
				Year:  2026,
				Round: RoundAll,
				Sort:  SortBoard,
				Lens:  LensAtRisk,
			},
		},
		{
			name: "well-formed team accepted without registry",
			raw:  RawSelection{Team: " okc ", SelectedType: "selection", SelectedKey: " 77 "},
			expected: Selection{
				View:         ViewPicks,
				Year:         2026,
				Round:        RoundAll,
				Team:         "OKC",
				Sort:         SortBoard,
				Lens:         LensAll,
				SelectedType: SelectedTypeSelection,
				SelectedKey:  "77",
			},
		},
		{
			name: "malformed team ignored",
			raw:  RawSelection{Team: "N1K"},
			expected: Selection{
				View:  ViewPicks,
				Year:  2026,
				Round: RoundAll,
				Sort:  SortBoard,
				Lens:  LensAll,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeSelection(tt.raw, 2026, tt.known)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCurrentDraftYear(t *testing.T) {
	assert.Equal(t, 2026, CurrentDraftYear(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2026, CurrentDraftYear(time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2027, CurrentDraftYear(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2027, CurrentDraftYear(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)))
}

func TestRounds(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Rounds(RoundAll))
	assert.Equal(t, []int{2}, Rounds(2))
}

func TestAssetType(t *testing.T) {
	assert.True(t, AssetTypeTradedOut.IsTradedOut())
	assert.True(t, AssetType("to").IsTradedOut())
	assert.False(t, AssetTypeOwn.IsTradedOut())
	assert.True(t, AssetType("own").IsOwn())
	assert.False(t, AssetTypeAcquired.IsOwn())
}

func TestProvenanceEdgeTouches(t *testing.T) {
	edge := ProvenanceEdge{FromTeamCode: "NYK", ToTeamCode: "LAL", OriginalTeamCode: "DAL"}
	assert.True(t, edge.Touches("NYK"))
	assert.True(t, edge.Touches("LAL"))
	assert.True(t, edge.Touches("DAL"))
	assert.False(t, edge.Touches("BOS"))
}
