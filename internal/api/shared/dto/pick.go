package dto

import (
	"encoding/json"
	"time"

	"github.com/hoopsledger/pickboard/internal/domain"
)

// PickSummaryResponse represents one aggregated (year, round, original team) pick
type PickSummaryResponse struct {
	PickKey              string            `json:"pick_key"`
	DraftYear            int               `json:"draft_year"`
	DraftRound           int               `json:"draft_round"`
	TeamCode             domain.TeamCode   `json:"team_code"`
	CurrentTeamCode      domain.TeamCode   `json:"current_team_code"`
	IsSwap               bool              `json:"is_swap"`
	HasConditional       bool              `json:"has_conditional"`
	HasForfeited         bool              `json:"has_forfeited"`
	HasOutgoing          bool              `json:"has_outgoing"`
	NeedsReview          bool              `json:"needs_review"`
	ProtectionsSummary   string            `json:"protections_summary"`
	PickStatus           domain.PickStatus `json:"pick_status"`
	AssetLineCount       int               `json:"asset_line_count"`
	OutgoingLineCount    int               `json:"outgoing_line_count"`
	ConditionalLineCount int               `json:"conditional_line_count"`
	ProvenanceTradeCount int               `json:"provenance_trade_count"`
	OwnershipRiskScore   int               `json:"ownership_risk_score"`
	EndnoteIDs           []int64           `json:"endnote_ids"`
	RefreshedAt          *time.Time        `json:"refreshed_at"`
}

// PickListResponse represents the pick list presentation
type PickListResponse struct {
	Selection          SelectionParams       `json:"selection"`
	Picks              []PickSummaryResponse `json:"picks"`
	Total              int                   `json:"total"`
	CoverageGaps       []string              `json:"coverage_gaps"`        // team/year/round combos with no asset rows
	MissingEndnoteRefs []int64               `json:"missing_endnote_refs"` // referenced by rows but absent from the warehouse
	Overlay            OverlayResponse       `json:"overlay"`
	RefreshedAt        *time.Time            `json:"refreshed_at"`
}

// AssetLineResponse represents one fragment of a pick's disposition
type AssetLineResponse struct {
	AssetSlot             int               `json:"asset_slot"`
	SubAssetSlot          int               `json:"sub_asset_slot"`
	AssetType             domain.AssetType  `json:"asset_type"`
	IsForfeited           bool              `json:"is_forfeited"`
	IsSwap                bool              `json:"is_swap"`
	IsConditional         bool              `json:"is_conditional"`
	CounterpartyTeamCode  *domain.TeamCode  `json:"counterparty_team_code"`
	CounterpartyTeamCodes []domain.TeamCode `json:"counterparty_team_codes"`
	ViaTeamCodes          []domain.TeamCode `json:"via_team_codes"`
	DisplayText           *string           `json:"display_text"`
	PrimaryEndnoteID      *int64            `json:"primary_endnote_id"`
	EffectiveEndnoteIDs   []int64           `json:"effective_endnote_ids"`
	NeedsReview           bool              `json:"needs_review"`
}

// ProvenanceEdgeResponse represents one trade-linked ownership transfer
type ProvenanceEdgeResponse struct {
	ID                 int64           `json:"id"`
	TradeID            int64           `json:"trade_id"`
	TradeDate          *time.Time      `json:"trade_date"`
	DraftYear          int             `json:"draft_year"`
	DraftRound         int             `json:"draft_round"`
	FromTeamCode       domain.TeamCode `json:"from_team_code"`
	ToTeamCode         domain.TeamCode `json:"to_team_code"`
	OriginalTeamCode   domain.TeamCode `json:"original_team_code"`
	IsSwap             bool            `json:"is_swap"`
	IsFuture           bool            `json:"is_future"`
	IsConditional      bool            `json:"is_conditional"`
	ConditionalType    *string         `json:"conditional_type"`
	IsDraftYearPlusTwo bool            `json:"is_draft_year_plus_two"`
	Raw                json.RawMessage `json:"raw,omitempty"`
}

// EndnoteResponse represents a structured trade endnote
type EndnoteResponse struct {
	EndnoteID         int64      `json:"endnote_id"`
	TradeID           *int64     `json:"trade_id"`
	TradeDate         *time.Time `json:"trade_date"`
	Explanation       *string    `json:"explanation"`
	Protections       *string    `json:"protections"`
	Contingency       *string    `json:"contingency"`
	Exercise          *string    `json:"exercise"`
	IsSwap            bool       `json:"is_swap"`
	IsConditional     bool       `json:"is_conditional"`
	DraftYearStart    *int       `json:"draft_year_start"`
	DraftYearEnd      *int       `json:"draft_year_end"`
	DraftRounds       []int64    `json:"draft_rounds"`
	DependsOnEndnotes []int64    `json:"depends_on_endnotes"`
}

// PickDetailResponse is the overlay payload of a single pick
type PickDetailResponse struct {
	Pick                  PickSummaryResponse      `json:"pick"`
	AssetLines            []AssetLineResponse      `json:"asset_lines"`
	Provenance            []ProvenanceEdgeResponse `json:"provenance"`
	Endnotes              []EndnoteResponse        `json:"endnotes"`
	EndnoteDependencies   []EndnoteResponse        `json:"endnote_dependencies"`
	MissingEndnoteRefs    []int64                  `json:"missing_endnote_refs"`
	MissingDependencyRefs []int64                  `json:"missing_dependency_refs"`
}

// MapPickSummaryToDTO maps a domain pick summary to its response
func MapPickSummaryToDTO(s domain.PickSummary) PickSummaryResponse {
	return PickSummaryResponse{
		PickKey:              s.Key().String(),
		DraftYear:            s.DraftYear,
		DraftRound:           s.DraftRound,
		TeamCode:             s.TeamCode,
		CurrentTeamCode:      s.CurrentTeamCode,
		IsSwap:               s.IsSwap,
		HasConditional:       s.HasConditional,
		HasForfeited:         s.HasForfeited,
		HasOutgoing:          s.HasOutgoing,
		NeedsReview:          s.NeedsReview,
		ProtectionsSummary:   s.ProtectionsSummary,
		PickStatus:           s.PickStatus,
		AssetLineCount:       s.AssetLineCount,
		OutgoingLineCount:    s.OutgoingLineCount,
		ConditionalLineCount: s.ConditionalLineCount,
		ProvenanceTradeCount: s.ProvenanceTradeCount,
		OwnershipRiskScore:   s.OwnershipRiskScore,
		EndnoteIDs:           nonNilIDs(s.EndnoteIDs),
		RefreshedAt:          s.RefreshedAt,
	}
}

// MapPickSummariesToDTO maps pick summaries, preserving order
func MapPickSummariesToDTO(summaries []domain.PickSummary) []PickSummaryResponse {
	out := make([]PickSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, MapPickSummaryToDTO(s))
	}
	return out
}

// MapAssetRowsToDTO maps asset rows to asset lines, preserving order
func MapAssetRowsToDTO(rows []domain.AssetRow) []AssetLineResponse {
	out := make([]AssetLineResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, AssetLineResponse{
			AssetSlot:             r.AssetSlot,
			SubAssetSlot:          r.SubAssetSlot,
			AssetType:             r.AssetType,
			IsForfeited:           r.IsForfeited,
			IsSwap:                r.IsSwap,
			IsConditional:         r.IsConditional,
			CounterpartyTeamCode:  r.CounterpartyTeamCode,
			CounterpartyTeamCodes: nonNilTeams(r.CounterpartyTeamCodes),
			ViaTeamCodes:          nonNilTeams(r.ViaTeamCodes),
			DisplayText:           r.DisplayText,
			PrimaryEndnoteID:      r.PrimaryEndnoteID,
			EffectiveEndnoteIDs:   nonNilIDs(r.EffectiveEndnoteIDs),
			NeedsReview:           r.NeedsReview,
		})
	}
	return out
}

// MapProvenanceEdgesToDTO maps provenance edges, preserving order
func MapProvenanceEdgesToDTO(edges []domain.ProvenanceEdge) []ProvenanceEdgeResponse {
	out := make([]ProvenanceEdgeResponse, 0, len(edges))
	for _, e := range edges {
		out = append(out, ProvenanceEdgeResponse{
			ID:                 e.ID,
			TradeID:            e.TradeID,
			TradeDate:          e.TradeDate,
			DraftYear:          e.DraftYear,
			DraftRound:         e.DraftRound,
			FromTeamCode:       e.FromTeamCode,
			ToTeamCode:         e.ToTeamCode,
			OriginalTeamCode:   e.OriginalTeamCode,
			IsSwap:             e.IsSwap,
			IsFuture:           e.IsFuture,
			IsConditional:      e.IsConditional,
			ConditionalType:    e.ConditionalType,
			IsDraftYearPlusTwo: e.IsDraftYearPlusTwo,
			Raw:                e.Raw,
		})
	}
	return out
}

// MapEndnotesToDTO maps endnotes, preserving order
func MapEndnotesToDTO(endnotes []domain.Endnote) []EndnoteResponse {
	out := make([]EndnoteResponse, 0, len(endnotes))
	for _, n := range endnotes {
		out = append(out, EndnoteResponse{
			EndnoteID:         n.EndnoteID,
			TradeID:           n.TradeID,
			TradeDate:         n.TradeDate,
			Explanation:       n.Explanation,
			Protections:       n.Protections,
			Contingency:       n.Contingency,
			Exercise:          n.Exercise,
			IsSwap:            n.IsSwap,
			IsConditional:     n.IsConditional,
			DraftYearStart:    n.DraftYearStart,
			DraftYearEnd:      n.DraftYearEnd,
			DraftRounds:       nonNilIDs(n.DraftRounds),
			DependsOnEndnotes: nonNilIDs(n.DependsOnEndnotes),
		})
	}
	return out
}

// MapPickKeysToDTO formats pick keys as TEAM-YEAR-ROUND strings
func MapPickKeysToDTO(keys []domain.PickKey) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.String())
	}
	return out
}

func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

func nonNilTeams(teams []domain.TeamCode) []domain.TeamCode {
	if teams == nil {
		return []domain.TeamCode{}
	}
	return teams
}
