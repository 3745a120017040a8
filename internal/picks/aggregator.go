// Package picks aggregates warehouse asset rows into one summary per pick.
package picks

import (
	"sort"
	"strings"
	"time"

	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/provenance"
	"github.com/hoopsledger/pickboard/internal/risk"
)

// ProtectionsSeparator joins distinct protection fragments in a summary
const ProtectionsSeparator = "; "

// Aggregate groups rows by (year, round, original team) and summarizes each group.
// Combinations without rows produce no summary. Output is ordered by year, round, team.
func Aggregate(rows []domain.AssetRow, idx *provenance.Index) []domain.PickSummary {
	groups := make(map[domain.PickKey][]domain.AssetRow)
	for _, row := range rows {
		key := domain.NewPickKey(row.TeamCode.Normalize(), row.DraftYear, row.DraftRound)
		groups[key] = append(groups[key], row)
	}

	summaries := make([]domain.PickSummary, 0, len(groups))
	for key, group := range groups {
		summaries = append(summaries, summarize(key, group, idx))
	}
	Sort(summaries, domain.SortBoard)
	return summaries
}

func summarize(key domain.PickKey, rows []domain.AssetRow, idx *provenance.Index) domain.PickSummary {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].AssetSlot != rows[j].AssetSlot {
			return rows[i].AssetSlot < rows[j].AssetSlot
		}
		return rows[i].SubAssetSlot < rows[j].SubAssetSlot
	})

	summary := domain.PickSummary{
		DraftYear:      key.DraftYear,
		DraftRound:     key.DraftRound,
		TeamCode:       key.TeamCode,
		AssetLineCount: len(rows),
	}

	protections := make(map[string]struct{})
	endnotes := make(map[int64]struct{})
	var refreshedAt *time.Time

	for _, row := range rows {
		if row.IsForfeited {
			summary.HasForfeited = true
		}
		if row.IsConditional {
			summary.HasConditional = true
			summary.ConditionalLineCount++
		}
		if row.IsSwap {
			summary.IsSwap = true
		}
		if row.AssetType.IsTradedOut() {
			summary.HasOutgoing = true
			summary.OutgoingLineCount++
		}
		if row.NeedsReview {
			summary.NeedsReview = true
		}
		if !row.AssetType.IsOwn() && row.DisplayText != nil {
			if text := strings.TrimSpace(*row.DisplayText); text != "" {
				protections[text] = struct{}{}
			}
		}
		for _, id := range row.EndnoteIDs() {
			endnotes[id] = struct{}{}
		}
		if row.RefreshedAt != nil && (refreshedAt == nil || row.RefreshedAt.After(*refreshedAt)) {
			t := *row.RefreshedAt
			refreshedAt = &t
		}
	}

	summary.CurrentTeamCode = currentTeam(key.TeamCode, rows)
	summary.PickStatus = risk.Status(summary.HasForfeited, summary.HasConditional, summary.HasOutgoing)
	summary.ProtectionsSummary = joinSorted(protections)
	summary.EndnoteIDs = sortedIDs(endnotes)
	summary.RefreshedAt = refreshedAt
	summary.ProvenanceTradeCount = idx.TradeCount(key)
	summary.OwnershipRiskScore = risk.Score(risk.Input{
		Forfeited:            summary.HasForfeited,
		Conditional:          summary.HasConditional,
		Swap:                 summary.IsSwap,
		Status:               summary.PickStatus,
		ProvenanceTradeCount: summary.ProvenanceTradeCount,
	})

	return summary
}

// Sort orders summaries in place.
//   - board: year, round, team
//   - risk: highest risk first, then board order
//   - provenance: most trades first, then highest risk, then board order
func Sort(summaries []domain.PickSummary, order domain.Sort) {
	board := func(a, b domain.PickSummary) bool {
		if a.DraftYear != b.DraftYear {
			return a.DraftYear < b.DraftYear
		}
		if a.DraftRound != b.DraftRound {
			return a.DraftRound < b.DraftRound
		}
		return a.TeamCode < b.TeamCode
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		switch order {
		case domain.SortRisk:
			if a.OwnershipRiskScore != b.OwnershipRiskScore {
				return a.OwnershipRiskScore > b.OwnershipRiskScore
			}
		case domain.SortProvenance:
			if a.ProvenanceTradeCount != b.ProvenanceTradeCount {
				return a.ProvenanceTradeCount > b.ProvenanceTradeCount
			}
			if a.OwnershipRiskScore != b.OwnershipRiskScore {
				return a.OwnershipRiskScore > b.OwnershipRiskScore
			}
		}
		return board(a, b)
	})
}

// ReferencedEndnoteIDs returns every endnote id the rows reference, sorted and unique
func ReferencedEndnoteIDs(rows []domain.AssetRow) []int64 {
	ids := make(map[int64]struct{})
	for _, row := range rows {
		for _, id := range row.EndnoteIDs() {
			ids[id] = struct{}{}
		}
	}
	return sortedIDs(ids)
}

// CoverageGaps lists the (team, year, round) picks that have no summary.
// The warehouse is expected to carry a row for every legitimate pick; a gap is
// reported rather than rendered as a default unencumbered pick.
func CoverageGaps(summaries []domain.PickSummary, teams []domain.TeamCode, years []int, rounds []int) []domain.PickKey {
	present := make(map[domain.PickKey]struct{}, len(summaries))
	for _, s := range summaries {
		present[s.Key()] = struct{}{}
	}

	gaps := []domain.PickKey{}
	for _, year := range years {
		for _, round := range rounds {
			for _, team := range sortedTeams(teams) {
				key := domain.NewPickKey(team, year, round)
				if _, ok := present[key]; !ok {
					gaps = append(gaps, key)
				}
			}
		}
	}
	return gaps
}

func sortedTeams(teams []domain.TeamCode) []domain.TeamCode {
	out := append([]domain.TeamCode{}, teams...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func joinSorted(set map[string]struct{}) string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return strings.Join(values, ProtectionsSeparator)
}

func sortedIDs(set map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
