// Package selection classifies historical draft selections into severity lanes.
package selection

import (
	"sort"

	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/provenance"
	"github.com/hoopsledger/pickboard/internal/risk"
)

// Lane is one non-empty severity bucket of selection rows
type Lane struct {
	Severity domain.SeverityLane
	Rows     []domain.SelectionRow
}

// Severity assigns a lane from the raw predicates, independent of the score
func Severity(provenanceTradeCount int, hasTrade bool) domain.SeverityLane {
	switch {
	case provenanceTradeCount >= 2:
		return domain.SeverityDeepChain
	case provenanceTradeCount > 0 || hasTrade:
		return domain.SeverityWithTrade
	default:
		return domain.SeverityClean
	}
}

// Classify turns one warehouse selection into a scored, laned row
func Classify(sel domain.DraftSelection, provenanceTradeCount int) domain.SelectionRow {
	hasTrade := sel.TradeID != nil
	return domain.SelectionRow{
		TransactionID:        sel.TransactionID,
		DraftYear:            sel.DraftYear,
		DraftRound:           sel.DraftRound,
		PickNumber:           sel.PickNumber,
		PlayerID:             sel.PlayerID,
		PlayerName:           sel.PlayerName,
		TeamCode:             sel.TeamCode,
		TradeID:              sel.TradeID,
		ProvenanceTradeCount: provenanceTradeCount,
		ProvenanceRiskScore:  risk.SelectionScore(provenanceTradeCount, hasTrade, sel.DraftRound),
		Severity:             Severity(provenanceTradeCount, hasTrade),
	}
}

// ClassifyAll classifies selections against the provenance index, in draft order
func ClassifyAll(selections []domain.DraftSelection, idx *provenance.Index) []domain.SelectionRow {
	rows := make([]domain.SelectionRow, 0, len(selections))
	for _, sel := range selections {
		rows = append(rows, Classify(sel, idx.SelectionTradeCount(sel)))
	}
	Sort(rows, domain.SortBoard)
	return rows
}

// Sort orders rows in place.
//   - board: year, round, pick number, transaction id
//   - risk: highest provenance risk score first, then board order
//   - provenance: most provenance trades first, then highest score, then board order
func Sort(rows []domain.SelectionRow, order domain.Sort) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch order {
		case domain.SortRisk:
			if a.ProvenanceRiskScore != b.ProvenanceRiskScore {
				return a.ProvenanceRiskScore > b.ProvenanceRiskScore
			}
		case domain.SortProvenance:
			if a.ProvenanceTradeCount != b.ProvenanceTradeCount {
				return a.ProvenanceTradeCount > b.ProvenanceTradeCount
			}
			if a.ProvenanceRiskScore != b.ProvenanceRiskScore {
				return a.ProvenanceRiskScore > b.ProvenanceRiskScore
			}
		}
		if a.DraftYear != b.DraftYear {
			return a.DraftYear < b.DraftYear
		}
		if a.DraftRound != b.DraftRound {
			return a.DraftRound < b.DraftRound
		}
		if a.PickNumber != b.PickNumber {
			return a.PickNumber < b.PickNumber
		}
		return a.TransactionID < b.TransactionID
	})
}

// Lanes groups rows most-severe-first, keeping the rows' relative order.
// Empty lanes are omitted.
func Lanes(rows []domain.SelectionRow) []Lane {
	byLane := make(map[domain.SeverityLane][]domain.SelectionRow)
	for _, row := range rows {
		byLane[row.Severity] = append(byLane[row.Severity], row)
	}

	lanes := []Lane{}
	for _, severity := range domain.SeverityLanes {
		if len(byLane[severity]) == 0 {
			continue
		}
		lanes = append(lanes, Lane{Severity: severity, Rows: byLane[severity]})
	}
	return lanes
}

// Counts reports the number of rows per lane. Every lane key is always present.
func Counts(rows []domain.SelectionRow) map[domain.SeverityLane]int {
	counts := make(map[domain.SeverityLane]int, len(domain.SeverityLanes))
	for _, severity := range domain.SeverityLanes {
		counts[severity] = 0
	}
	for _, row := range rows {
		counts[row.Severity]++
	}
	return counts
}
