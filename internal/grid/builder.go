// Package grid builds the team × round × year ownership matrix.
package grid

import (
	"fmt"
	"sort"

	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/lens"
)

// Options selects the window, filters and ordering of a grid
type Options struct {
	StartYear int
	Round     int // domain.RoundAll for every round
	Team      domain.TeamCode
	Sort      domain.Sort
	Lens      domain.Lens
}

// Years returns the draft years covered by the window starting at StartYear
func (o Options) Years() []int {
	years := make([]int, domain.GridWindowYears)
	for i := range years {
		years[i] = o.StartYear + i
	}
	return years
}

// TeamRow carries a team's aggregates over its visible cells
type TeamRow struct {
	TeamCode        domain.TeamCode
	RiskTotal       int
	OutgoingCount   int
	ProvenanceTotal int
	CellCount       int
}

// Grid is the ownership matrix: team → round → year → cell
type Grid struct {
	Years  []int
	Rounds []int
	Teams  []TeamRow
	Cells  map[domain.TeamCode]map[int]map[int]domain.GridCell
}

// Cell looks up the cell of a pick key
func (g Grid) Cell(key domain.PickKey) (domain.GridCell, bool) {
	cell, ok := g.Cells[key.TeamCode][key.DraftRound][key.DraftYear]
	return cell, ok
}

// VisibleCells returns every cell in team order, then round, then year
func (g Grid) VisibleCells() []domain.GridCell {
	cells := []domain.GridCell{}
	for _, team := range g.Teams {
		for _, round := range g.Rounds {
			for _, year := range g.Years {
				if cell, ok := g.Cells[team.TeamCode][round][year]; ok {
					cells = append(cells, cell)
				}
			}
		}
	}
	return cells
}

// CellFromSummary projects a scored pick summary onto a grid cell.
// The score is carried over, never recomputed, so the list and the grid agree.
func CellFromSummary(s domain.PickSummary) domain.GridCell {
	return domain.GridCell{
		TeamCode:             s.TeamCode,
		DraftRound:           s.DraftRound,
		DraftYear:            s.DraftYear,
		CellText:             cellText(s),
		PickStatus:           s.PickStatus,
		HasOutgoing:          s.HasOutgoing,
		HasSwap:              s.IsSwap,
		HasConditional:       s.HasConditional,
		HasForfeited:         s.HasForfeited,
		ProvenanceTradeCount: s.ProvenanceTradeCount,
		OwnershipRiskScore:   s.OwnershipRiskScore,
	}
}

func cellText(s domain.PickSummary) string {
	var text string
	switch s.PickStatus {
	case domain.PickStatusForfeited:
		text = "Forfeited"
	case domain.PickStatusConditional:
		if s.CurrentTeamCode != "" && s.CurrentTeamCode != s.TeamCode {
			text = fmt.Sprintf("Conditional (→%s)", s.CurrentTeamCode)
		} else {
			text = "Conditional"
		}
	case domain.PickStatusTraded:
		text = fmt.Sprintf("To %s", s.CurrentTeamCode)
	default:
		text = "Own"
	}
	if s.IsSwap {
		text = "Swap: " + text
	}
	return text
}

// Build lays summaries out as a grid.
//
// The lens is applied to the flat cell list before any team aggregation, so a
// team with no surviving cells is absent from the grid entirely.
func Build(summaries []domain.PickSummary, opts Options) Grid {
	years := opts.Years()
	rounds := domain.Rounds(opts.Round)

	inYears := make(map[int]bool, len(years))
	for _, y := range years {
		inYears[y] = true
	}
	inRounds := make(map[int]bool, len(rounds))
	for _, r := range rounds {
		inRounds[r] = true
	}

	cells := make([]domain.GridCell, 0, len(summaries))
	for _, s := range summaries {
		if !inYears[s.DraftYear] || !inRounds[s.DraftRound] {
			continue
		}
		if opts.Team != "" && s.TeamCode != opts.Team {
			continue
		}
		cells = append(cells, CellFromSummary(s))
	}

	cells = lens.Filter(cells, lens.Cell(opts.Lens))

	g := Grid{
		Years:  years,
		Rounds: rounds,
		Teams:  []TeamRow{},
		Cells:  make(map[domain.TeamCode]map[int]map[int]domain.GridCell),
	}

	totals := make(map[domain.TeamCode]*TeamRow)
	for _, cell := range cells {
		if g.Cells[cell.TeamCode] == nil {
			g.Cells[cell.TeamCode] = make(map[int]map[int]domain.GridCell)
		}
		if g.Cells[cell.TeamCode][cell.DraftRound] == nil {
			g.Cells[cell.TeamCode][cell.DraftRound] = make(map[int]domain.GridCell)
		}
		g.Cells[cell.TeamCode][cell.DraftRound][cell.DraftYear] = cell

		row, ok := totals[cell.TeamCode]
		if !ok {
			row = &TeamRow{TeamCode: cell.TeamCode}
			totals[cell.TeamCode] = row
		}
		row.RiskTotal += cell.OwnershipRiskScore
		row.ProvenanceTotal += cell.ProvenanceTradeCount
		row.CellCount++
		if cell.HasOutgoing {
			row.OutgoingCount++
		}
	}

	for _, row := range totals {
		g.Teams = append(g.Teams, *row)
	}
	SortTeams(g.Teams, opts.Sort)

	return g
}

// SortTeams orders team rows in place.
//   - risk: risk total, outgoing count, provenance total (all descending), then team
//   - provenance: provenance total, risk total, outgoing count (all descending), then team
//   - anything else: team code ascending
func SortTeams(teams []TeamRow, order domain.Sort) {
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		var keys [][2]int
		switch order {
		case domain.SortRisk:
			keys = [][2]int{{a.RiskTotal, b.RiskTotal}, {a.OutgoingCount, b.OutgoingCount}, {a.ProvenanceTotal, b.ProvenanceTotal}}
		case domain.SortProvenance:
			keys = [][2]int{{a.ProvenanceTotal, b.ProvenanceTotal}, {a.RiskTotal, b.RiskTotal}, {a.OutgoingCount, b.OutgoingCount}}
		}
		for _, k := range keys {
			if k[0] != k[1] {
				return k[0] > k[1]
			}
		}
		return a.TeamCode < b.TeamCode
	})
}
