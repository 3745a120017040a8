package dto

import (
	"time"

	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/grid"
)

// GridCellResponse represents one team/round/year cell
type GridCellResponse struct {
	PickKey              string            `json:"pick_key"`
	DraftYear            int               `json:"draft_year"`
	CellText             string            `json:"cell_text"`
	PickStatus           domain.PickStatus `json:"pick_status"`
	HasOutgoing          bool              `json:"has_outgoing"`
	HasSwap              bool              `json:"has_swap"`
	HasConditional       bool              `json:"has_conditional"`
	HasForfeited         bool              `json:"has_forfeited"`
	ProvenanceTradeCount int               `json:"provenance_trade_count"`
	OwnershipRiskScore   int               `json:"ownership_risk_score"`
}

// GridRoundResponse holds a team's cells for one round.
// Cells are aligned with the response years; a year without a visible cell is null.
type GridRoundResponse struct {
	DraftRound int                 `json:"draft_round"`
	Cells      []*GridCellResponse `json:"cells"`
}

// GridTeamResponse represents one team row of the grid
type GridTeamResponse struct {
	TeamCode        domain.TeamCode     `json:"team_code"`
	RiskTotal       int                 `json:"risk_total"`
	OutgoingCount   int                 `json:"outgoing_count"`
	ProvenanceTotal int                 `json:"provenance_total"`
	Rounds          []GridRoundResponse `json:"rounds"`
}

// GridResponse represents the ownership grid presentation
type GridResponse struct {
	Selection   SelectionParams    `json:"selection"`
	Years       []int              `json:"years"`
	Rounds      []int              `json:"rounds"`
	Teams       []GridTeamResponse `json:"teams"`
	Overlay     OverlayResponse    `json:"overlay"`
	RefreshedAt *time.Time         `json:"refreshed_at"`
}

// MapGridCellToDTO maps a grid cell to its response
func MapGridCellToDTO(c domain.GridCell) GridCellResponse {
	return GridCellResponse{
		PickKey:              c.Key().String(),
		DraftYear:            c.DraftYear,
		CellText:             c.CellText,
		PickStatus:           c.PickStatus,
		HasOutgoing:          c.HasOutgoing,
		HasSwap:              c.HasSwap,
		HasConditional:       c.HasConditional,
		HasForfeited:         c.HasForfeited,
		ProvenanceTradeCount: c.ProvenanceTradeCount,
		OwnershipRiskScore:   c.OwnershipRiskScore,
	}
}

// MapGridTeamsToDTO lays the grid's team rows out in team order, then round, then year
func MapGridTeamsToDTO(g grid.Grid) []GridTeamResponse {
	teams := make([]GridTeamResponse, 0, len(g.Teams))
	for _, row := range g.Teams {
		team := GridTeamResponse{
			TeamCode:        row.TeamCode,
			RiskTotal:       row.RiskTotal,
			OutgoingCount:   row.OutgoingCount,
			ProvenanceTotal: row.ProvenanceTotal,
			Rounds:          make([]GridRoundResponse, 0, len(g.Rounds)),
		}
		for _, round := range g.Rounds {
			r := GridRoundResponse{
				DraftRound: round,
				Cells:      make([]*GridCellResponse, len(g.Years)),
			}
			for i, year := range g.Years {
				if cell, ok := g.Cell(domain.NewPickKey(row.TeamCode, year, round)); ok {
					c := MapGridCellToDTO(cell)
					r.Cells[i] = &c
				}
			}
			team.Rounds = append(team.Rounds, r)
		}
		teams = append(teams, team)
	}
	return teams
}
