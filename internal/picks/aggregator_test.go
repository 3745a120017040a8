package picks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/provenance"
)

func strPtr(s string) *string { return &s }

func teamPtr(t domain.TeamCode) *domain.TeamCode { return &t }

func int64Ptr(i int64) *int64 { return &i }

func buildTestRow(team domain.TeamCode, year, round, slot int, assetType domain.AssetType) domain.AssetRow {
	return domain.AssetRow{
		TeamCode:   team,
		DraftYear:  year,
		DraftRound: round,
		AssetSlot:  slot,
		AssetType:  assetType,
	}
}

func buildTestEdge(id, trade int64, from, to domain.TeamCode, year, round int) domain.ProvenanceEdge {
	return domain.ProvenanceEdge{
		ID:               id,
		TradeID:          trade,
		DraftYear:        year,
		DraftRound:       round,
		FromTeamCode:     from,
		ToTeamCode:       to,
		OriginalTeamCode: from,
	}
}

func tradedSwapRows() []domain.AssetRow {
	row := buildTestRow("NYK", 2028, 1, 1, domain.AssetTypeTradedOut)
	row.IsSwap = true
	row.CounterpartyTeamCode = teamPtr("LAL")
	return []domain.AssetRow{row}
}

func TestAggregate_TradedSwap(t *testing.T) {
	idx := provenance.NewIndex([]domain.ProvenanceEdge{
		buildTestEdge(1, 500, "NYK", "LAL", 2028, 1),
	})

	summaries := Aggregate(tradedSwapRows(), idx)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, domain.PickStatusTraded, s.PickStatus)
	assert.True(t, s.IsSwap)
	assert.Equal(t, 1, s.ProvenanceTradeCount)
	assert.Equal(t, 5, s.OwnershipRiskScore)
	assert.Equal(t, domain.TeamCode("LAL"), s.CurrentTeamCode)
	assert.Equal(t, 1, s.OutgoingLineCount)
	assert.Equal(t, 1, s.AssetLineCount)
	assert.Equal(t, "NYK-2028-1", s.Key().String())
}

func TestAggregate_SecondTradeRaisesProvenance(t *testing.T) {
	idx := provenance.NewIndex([]domain.ProvenanceEdge{
		buildTestEdge(1, 500, "NYK", "LAL", 2028, 1),
		buildTestEdge(2, 501, "LAL", "NYK", 2028, 1),
	})

	summaries := Aggregate(tradedSwapRows(), idx)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].ProvenanceTradeCount)
	assert.Equal(t, 6, summaries[0].OwnershipRiskScore)
}

func TestAggregate_StatusPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(rows []domain.AssetRow)
		expected domain.PickStatus
	}{
		{
			name:     "plain own pick",
			mutate:   func(rows []domain.AssetRow) {},
			expected: domain.PickStatusOwn,
		},
		{
			name: "traded out",
			mutate: func(rows []domain.AssetRow) {
				rows[1].AssetType = domain.AssetTypeTradedOut
			},
			expected: domain.PickStatusTraded,
		},
		{
			name: "conditional beats traded",
			mutate: func(rows []domain.AssetRow) {
				rows[1].AssetType = domain.AssetTypeTradedOut
				rows[0].IsConditional = true
			},
			expected: domain.PickStatusConditional,
		},
		{
			name: "forfeited beats conditional",
			mutate: func(rows []domain.AssetRow) {
				rows[0].IsConditional = true
				rows[1].IsForfeited = true
			},
			expected: domain.PickStatusForfeited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []domain.AssetRow{
				buildTestRow("BOS", 2027, 2, 1, domain.AssetTypeOwn),
				buildTestRow("BOS", 2027, 2, 2, domain.AssetTypeOwn),
			}
			tt.mutate(rows)

			summaries := Aggregate(rows, provenance.NewIndex(nil))
			require.Len(t, summaries, 1)
			assert.Equal(t, tt.expected, summaries[0].PickStatus)
		})
	}
}

func TestAggregate_CurrentTeam(t *testing.T) {
	t.Run("display text wins over counterparty", func(t *testing.T) {
		row := buildTestRow("NYK", 2028, 1, 1, domain.AssetTypeTradedOut)
		row.DisplayText = strPtr("To OKC: top-4 protected")
		row.CounterpartyTeamCode = teamPtr("LAL")

		s := Aggregate([]domain.AssetRow{row}, nil)[0]
		assert.Equal(t, domain.TeamCode("OKC"), s.CurrentTeamCode)
	})

	t.Run("counterparty used when text has no destination", func(t *testing.T) {
		row := buildTestRow("NYK", 2028, 1, 1, domain.AssetTypeTradedOut)
		row.DisplayText = strPtr("Top-4 protected")
		row.CounterpartyTeamCode = teamPtr("lal")

		s := Aggregate([]domain.AssetRow{row}, nil)[0]
		assert.Equal(t, domain.TeamCode("LAL"), s.CurrentTeamCode)
	})

	t.Run("unresolvable destination fails open to original owner", func(t *testing.T) {
		row := buildTestRow("NYK", 2028, 1, 1, domain.AssetTypeTradedOut)
		row.DisplayText = strPtr("Conveyed per agreement")
		row.NeedsReview = true

		s := Aggregate([]domain.AssetRow{row}, nil)[0]
		assert.Equal(t, domain.TeamCode("NYK"), s.CurrentTeamCode)
		assert.True(t, s.NeedsReview)
	})

	t.Run("first traded-out row in slot order decides", func(t *testing.T) {
		second := buildTestRow("NYK", 2028, 1, 2, domain.AssetTypeTradedOut)
		second.DisplayText = strPtr("To BOS: swap rights")
		first := buildTestRow("NYK", 2028, 1, 1, domain.AssetTypeTradedOut)
		first.DisplayText = strPtr("To UTA: unprotected")

		s := Aggregate([]domain.AssetRow{second, first}, nil)[0]
		assert.Equal(t, domain.TeamCode("UTA"), s.CurrentTeamCode)
	})

	t.Run("unresolvable row does not stop the scan", func(t *testing.T) {
		protected := buildTestRow("NYK", 2028, 1, 1, domain.AssetTypeTradedOut)
		protected.DisplayText = strPtr("protected 1-4")
		conveyed := buildTestRow("NYK", 2028, 1, 2, domain.AssetTypeTradedOut)
		conveyed.CounterpartyTeamCode = teamPtr("LAL")

		s := Aggregate([]domain.AssetRow{protected, conveyed}, nil)[0]
		assert.Equal(t, domain.TeamCode("LAL"), s.CurrentTeamCode)
	})

	t.Run("no outgoing rows keeps owner", func(t *testing.T) {
		row := buildTestRow("NYK", 2028, 1, 1, domain.AssetTypeOwn)
		row.CounterpartyTeamCode = teamPtr("LAL")

		s := Aggregate([]domain.AssetRow{row}, nil)[0]
		assert.Equal(t, domain.TeamCode("NYK"), s.CurrentTeamCode)
	})
}

func TestAggregate_ProtectionsSummary(t *testing.T) {
	own := buildTestRow("PHX", 2029, 1, 1, domain.AssetTypeOwn)
	own.DisplayText = strPtr("Own")
	b := buildTestRow("PHX", 2029, 1, 2, domain.AssetTypeTradedOut)
	b.DisplayText = strPtr("To WAS: top-8 protected")
	a := buildTestRow("PHX", 2029, 1, 3, domain.AssetTypeAcquired)
	a.DisplayText = strPtr("Swap right with ORL")
	dup := buildTestRow("PHX", 2029, 1, 4, domain.AssetTypeOther)
	dup.DisplayText = strPtr("To WAS: top-8 protected")
	blank := buildTestRow("PHX", 2029, 1, 5, domain.AssetTypeOther)
	blank.DisplayText = strPtr("   ")

	s := Aggregate([]domain.AssetRow{own, b, a, dup, blank}, nil)[0]
	assert.Equal(t, "Swap right with ORL; To WAS: top-8 protected", s.ProtectionsSummary)
	assert.Equal(t, 5, s.AssetLineCount)
}

func TestAggregate_GroupsAndOrdering(t *testing.T) {
	rows := []domain.AssetRow{
		buildTestRow("UTA", 2028, 2, 1, domain.AssetTypeOwn),
		buildTestRow("BOS", 2028, 2, 1, domain.AssetTypeOwn),
		buildTestRow("UTA", 2028, 1, 1, domain.AssetTypeOwn),
		buildTestRow("uta", 2028, 1, 2, domain.AssetTypeOwn),
	}

	summaries := Aggregate(rows, nil)
	require.Len(t, summaries, 3)
	assert.Equal(t, "UTA-2028-1", summaries[0].Key().String())
	assert.Equal(t, 2, summaries[0].AssetLineCount)
	assert.Equal(t, "BOS-2028-2", summaries[1].Key().String())
	assert.Equal(t, "UTA-2028-2", summaries[2].Key().String())
}

func TestAggregate_EndnotesAndFreshness(t *testing.T) {
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	r1 := buildTestRow("DAL", 2030, 1, 1, domain.AssetTypeTradedOut)
	r1.PrimaryEndnoteID = int64Ptr(12)
	r1.EffectiveEndnoteIDs = []int64{12, 4}
	r1.RefreshedAt = &older
	r1.IsConditional = true
	r2 := buildTestRow("DAL", 2030, 1, 2, domain.AssetTypeOther)
	r2.EffectiveEndnoteIDs = []int64{30}
	r2.RefreshedAt = &newer
	r2.IsConditional = true

	s := Aggregate([]domain.AssetRow{r1, r2}, nil)[0]
	assert.Equal(t, []int64{4, 12, 30}, s.EndnoteIDs)
	require.NotNil(t, s.RefreshedAt)
	assert.True(t, s.RefreshedAt.Equal(newer))
	assert.Equal(t, 2, s.ConditionalLineCount)
	assert.Equal(t, []int64{4, 12, 30}, ReferencedEndnoteIDs([]domain.AssetRow{r1, r2}))
}

func TestAggregate_Empty(t *testing.T) {
	summaries := Aggregate(nil, nil)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
	assert.NotNil(t, ReferencedEndnoteIDs(nil))
}

func TestSort(t *testing.T) {
	summaries := []domain.PickSummary{
		{TeamCode: "BOS", DraftYear: 2028, DraftRound: 1, OwnershipRiskScore: 2, ProvenanceTradeCount: 2},
		{TeamCode: "ATL", DraftYear: 2028, DraftRound: 1, OwnershipRiskScore: 9, ProvenanceTradeCount: 1},
		{TeamCode: "CHI", DraftYear: 2027, DraftRound: 2, OwnershipRiskScore: 2, ProvenanceTradeCount: 2},
	}

	Sort(summaries, domain.SortRisk)
	assert.Equal(t, []domain.TeamCode{"ATL", "CHI", "BOS"}, teamsOf(summaries))

	Sort(summaries, domain.SortProvenance)
	assert.Equal(t, []domain.TeamCode{"CHI", "BOS", "ATL"}, teamsOf(summaries))

	Sort(summaries, domain.SortBoard)
	assert.Equal(t, []domain.TeamCode{"CHI", "ATL", "BOS"}, teamsOf(summaries))
}

func TestCoverageGaps(t *testing.T) {
	summaries := []domain.PickSummary{
		{TeamCode: "NYK", DraftYear: 2028, DraftRound: 1},
		{TeamCode: "LAL", DraftYear: 2028, DraftRound: 2},
	}

	gaps := CoverageGaps(summaries, []domain.TeamCode{"NYK", "LAL"}, []int{2028}, []int{1, 2})
	require.Len(t, gaps, 2)
	assert.Equal(t, "LAL-2028-1", gaps[0].String())
	assert.Equal(t, "NYK-2028-2", gaps[1].String())

	assert.Empty(t, CoverageGaps(summaries, nil, []int{2028}, []int{1}))
}

func TestParseDestination(t *testing.T) {
	tests := []struct {
		input string
		team  domain.TeamCode
		ok    bool
	}{
		{"To LAL: unprotected", "LAL", true},
		{"  to okc : top-10 protected", "OKC", true},
		{"TO BKN:", "BKN", true},
		{"From LAL: swap", "", false},
		{"To the Lakers: swap", "", false},
		{"Swap with LAL", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			team, ok := ParseDestination(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.team, team)
		})
	}
}

func teamsOf(summaries []domain.PickSummary) []domain.TeamCode {
	teams := make([]domain.TeamCode, len(summaries))
	for i, s := range summaries {
		teams[i] = s.TeamCode
	}
	return teams
}
