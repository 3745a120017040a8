package dto

import (
	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/selection"
)

// SelectionRowResponse represents a classified historical draft selection
type SelectionRowResponse struct {
	TransactionID        int64               `json:"transaction_id"`
	DraftYear            int                 `json:"draft_year"`
	DraftRound           int                 `json:"draft_round"`
	PickNumber           int                 `json:"pick_number"`
	PlayerID             int64               `json:"player_id"`
	PlayerName           string              `json:"player_name"`
	TeamCode             domain.TeamCode     `json:"team_code"`
	TradeID              *int64              `json:"trade_id"`
	ProvenanceTradeCount int                 `json:"provenance_trade_count"`
	ProvenanceRiskScore  int                 `json:"provenance_risk_score"`
	Severity             domain.SeverityLane `json:"severity"`
}

// SeverityLaneResponse groups selections of one severity
type SeverityLaneResponse struct {
	Severity domain.SeverityLane    `json:"severity"`
	Rows     []SelectionRowResponse `json:"rows"`
}

// SelectionListResponse represents the historical selection presentation
type SelectionListResponse struct {
	Selection      SelectionParams             `json:"selection"`
	Lanes          []SeverityLaneResponse      `json:"lanes"`
	SeverityCounts map[domain.SeverityLane]int `json:"severity_counts"`
	Total          int                         `json:"total"`
	Overlay        OverlayResponse             `json:"overlay"`
}

// SelectionDetailResponse is the overlay payload of a single historical selection
type SelectionDetailResponse struct {
	Selection  SelectionRowResponse     `json:"selection"`
	Provenance []ProvenanceEdgeResponse `json:"provenance"`
}

// MapSelectionRowToDTO maps a classified selection to its response
func MapSelectionRowToDTO(r domain.SelectionRow) SelectionRowResponse {
	return SelectionRowResponse{
		TransactionID:        r.TransactionID,
		DraftYear:            r.DraftYear,
		DraftRound:           r.DraftRound,
		PickNumber:           r.PickNumber,
		PlayerID:             r.PlayerID,
		PlayerName:           r.PlayerName,
		TeamCode:             r.TeamCode,
		TradeID:              r.TradeID,
		ProvenanceTradeCount: r.ProvenanceTradeCount,
		ProvenanceRiskScore:  r.ProvenanceRiskScore,
		Severity:             r.Severity,
	}
}

// MapLanesToDTO maps severity lanes, preserving lane and row order
func MapLanesToDTO(lanes []selection.Lane) []SeverityLaneResponse {
	out := make([]SeverityLaneResponse, 0, len(lanes))
	for _, lane := range lanes {
		rows := make([]SelectionRowResponse, 0, len(lane.Rows))
		for _, r := range lane.Rows {
			rows = append(rows, MapSelectionRowToDTO(r))
		}
		out = append(out, SeverityLaneResponse{Severity: lane.Severity, Rows: rows})
	}
	return out
}
