package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/provenance"
)

func tradeID(id int64) *int64 { return &id }

func TestSeverity(t *testing.T) {
	tests := []struct {
		name       string
		provenance int
		hasTrade   bool
		expected   domain.SeverityLane
	}{
		{name: "two trades without trade id", provenance: 2, expected: domain.SeverityDeepChain},
		{name: "three trades with trade id", provenance: 3, hasTrade: true, expected: domain.SeverityDeepChain},
		{name: "trade id only", provenance: 0, hasTrade: true, expected: domain.SeverityWithTrade},
		{name: "one trade", provenance: 1, expected: domain.SeverityWithTrade},
		{name: "nothing", provenance: 0, expected: domain.SeverityClean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Severity(tt.provenance, tt.hasTrade))
		})
	}
}

func TestClassify_DeepChainWithoutTrade(t *testing.T) {
	row := Classify(domain.DraftSelection{TransactionID: 1, DraftYear: 2019, DraftRound: 1, TeamCode: "MEM"}, 3)
	assert.Equal(t, domain.SeverityDeepChain, row.Severity)
	assert.Equal(t, 4, row.ProvenanceRiskScore)
}

func TestClassify_ScoreIndependentOfLane(t *testing.T) {
	// a second-round pick with a trade id scores 1 but lands in with_trade
	row := Classify(domain.DraftSelection{TransactionID: 2, DraftYear: 2020, DraftRound: 2, TradeID: tradeID(9)}, 0)
	assert.Equal(t, domain.SeverityWithTrade, row.Severity)
	assert.Equal(t, 1, row.ProvenanceRiskScore)

	// a clean first-round pick still scores 1
	row = Classify(domain.DraftSelection{TransactionID: 3, DraftYear: 2020, DraftRound: 1}, 0)
	assert.Equal(t, domain.SeverityClean, row.Severity)
	assert.Equal(t, 1, row.ProvenanceRiskScore)
}

func TestClassifyAll(t *testing.T) {
	original := domain.TeamCode("PHX")
	selections := []domain.DraftSelection{
		{TransactionID: 30, DraftYear: 2019, DraftRound: 1, PickNumber: 6, TeamCode: "BOS"},
		{TransactionID: 10, DraftYear: 2019, DraftRound: 1, PickNumber: 2, TeamCode: "MEM", OriginalTeamCode: &original},
		{TransactionID: 20, DraftYear: 2019, DraftRound: 2, PickNumber: 40, TeamCode: "UTA", TradeID: tradeID(77)},
	}
	idx := provenance.NewIndex([]domain.ProvenanceEdge{
		{ID: 1, TradeID: 100, DraftYear: 2019, DraftRound: 1, FromTeamCode: "PHX", ToTeamCode: "OKC", OriginalTeamCode: "PHX"},
		{ID: 2, TradeID: 101, DraftYear: 2019, DraftRound: 1, FromTeamCode: "OKC", ToTeamCode: "MEM", OriginalTeamCode: "PHX"},
	})

	rows := ClassifyAll(selections, idx)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(10), rows[0].TransactionID)
	assert.Equal(t, 2, rows[0].ProvenanceTradeCount)
	assert.Equal(t, domain.SeverityDeepChain, rows[0].Severity)
	assert.Equal(t, int64(30), rows[1].TransactionID)
	assert.Equal(t, domain.SeverityClean, rows[1].Severity)
	assert.Equal(t, int64(20), rows[2].TransactionID)
	assert.Equal(t, domain.SeverityWithTrade, rows[2].Severity)

	Sort(rows, domain.SortRisk)
	assert.Equal(t, int64(10), rows[0].TransactionID)
	assert.Equal(t, int64(30), rows[1].TransactionID) // score 1 (round 1), earlier round than UTA's score 1
	assert.Equal(t, int64(20), rows[2].TransactionID)
}

func TestLanesAndCounts(t *testing.T) {
	rows := []domain.SelectionRow{
		{TransactionID: 1, Severity: domain.SeverityClean},
		{TransactionID: 2, Severity: domain.SeverityDeepChain},
		{TransactionID: 3, Severity: domain.SeverityClean},
	}

	lanes := Lanes(rows)
	require.Len(t, lanes, 2)
	assert.Equal(t, domain.SeverityDeepChain, lanes[0].Severity)
	assert.Equal(t, domain.SeverityClean, lanes[1].Severity)
	assert.Equal(t, int64(1), lanes[1].Rows[0].TransactionID)
	assert.Equal(t, int64(3), lanes[1].Rows[1].TransactionID)

	counts := Counts(rows)
	assert.Equal(t, map[domain.SeverityLane]int{
		domain.SeverityDeepChain: 1,
		domain.SeverityWithTrade: 0,
		domain.SeverityClean:     2,
	}, counts)
}

func TestLanesAndCounts_Empty(t *testing.T) {
	assert.Empty(t, Lanes(nil))
	assert.NotNil(t, Lanes(nil))
	assert.Equal(t, map[domain.SeverityLane]int{
		domain.SeverityDeepChain: 0,
		domain.SeverityWithTrade: 0,
		domain.SeverityClean:     0,
	}, Counts(nil))
	assert.NotNil(t, ClassifyAll(nil, nil))
}
