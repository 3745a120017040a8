package domain

import (
	"encoding/json"
	"time"
)

// AssetRow is one fragment of a pick's disposition as produced by the warehouse.
// Unique per (TeamCode, DraftYear, DraftRound, AssetSlot, SubAssetSlot).
type AssetRow struct {
	TeamCode              TeamCode
	DraftYear             int
	DraftRound            int
	AssetSlot             int
	SubAssetSlot          int
	AssetType             AssetType
	IsForfeited           bool
	IsSwap                bool
	IsConditional         bool
	CounterpartyTeamCode  *TeamCode
	CounterpartyTeamCodes []TeamCode
	ViaTeamCodes          []TeamCode
	DisplayText           *string
	PrimaryEndnoteID      *int64
	EffectiveEndnoteIDs   []int64
	NeedsReview           bool
	RefreshedAt           *time.Time
}

// EndnoteIDs returns the primary and effective endnote ids referenced by the row
func (r AssetRow) EndnoteIDs() []int64 {
	ids := make([]int64, 0, len(r.EffectiveEndnoteIDs)+1)
	if r.PrimaryEndnoteID != nil {
		ids = append(ids, *r.PrimaryEndnoteID)
	}
	return append(ids, r.EffectiveEndnoteIDs...)
}

// ProvenanceEdge is one trade-linked ownership transfer of a pick
type ProvenanceEdge struct {
	ID                 int64
	TradeID            int64
	TradeDate          *time.Time
	DraftYear          int
	DraftRound         int
	FromTeamCode       TeamCode
	ToTeamCode         TeamCode
	OriginalTeamCode   TeamCode
	IsSwap             bool
	IsFuture           bool
	IsConditional      bool
	ConditionalType    *string
	IsDraftYearPlusTwo bool
	// Raw is the ingested trade line, nil when the warehouse kept none
	Raw json.RawMessage
}

// Touches reports whether the edge involves team as sender, receiver or original owner
func (e ProvenanceEdge) Touches(team TeamCode) bool {
	return e.FromTeamCode == team || e.ToTeamCode == team || e.OriginalTeamCode == team
}

// Endnote is a structured textual explanation attached to pick fragments
type Endnote struct {
	EndnoteID         int64
	TradeID           *int64
	TradeDate         *time.Time
	Explanation       *string
	Protections       *string
	Contingency       *string
	Exercise          *string
	IsSwap            bool
	IsConditional     bool
	DraftYearStart    *int
	DraftYearEnd      *int
	DraftRounds       []int64
	DependsOnEndnotes []int64
}

// DraftSelection is a historical draft pick actually used on a player
type DraftSelection struct {
	TransactionID    int64
	DraftYear        int
	DraftRound       int
	PickNumber       int
	PlayerID         int64
	PlayerName       string
	TeamCode         TeamCode
	OriginalTeamCode *TeamCode
	TradeID          *int64
	SelectedAt       *time.Time
}

// PickSummary is the aggregated view of one (year, round, original team) pick
type PickSummary struct {
	DraftYear            int
	DraftRound           int
	TeamCode             TeamCode
	CurrentTeamCode      TeamCode
	IsSwap               bool
	HasConditional       bool
	HasForfeited         bool
	HasOutgoing          bool
	NeedsReview          bool
	ProtectionsSummary   string
	PickStatus           PickStatus
	AssetLineCount       int
	OutgoingLineCount    int
	ConditionalLineCount int
	ProvenanceTradeCount int
	OwnershipRiskScore   int
	EndnoteIDs           []int64
	RefreshedAt          *time.Time
}

// Key returns the pick key of the summary
func (p PickSummary) Key() PickKey {
	return NewPickKey(p.TeamCode, p.DraftYear, p.DraftRound)
}

// GridCell is one team/round/year cell of the ownership grid
type GridCell struct {
	TeamCode             TeamCode
	DraftRound           int
	DraftYear            int
	CellText             string
	PickStatus           PickStatus
	HasOutgoing          bool
	HasSwap              bool
	HasConditional       bool
	HasForfeited         bool
	ProvenanceTradeCount int
	OwnershipRiskScore   int
}

// Key returns the pick key of the cell
func (c GridCell) Key() PickKey {
	return NewPickKey(c.TeamCode, c.DraftYear, c.DraftRound)
}

// SelectionRow is a classified historical draft selection
type SelectionRow struct {
	TransactionID        int64
	DraftYear            int
	DraftRound           int
	PickNumber           int
	PlayerID             int64
	PlayerName           string
	TeamCode             TeamCode
	TradeID              *int64
	ProvenanceTradeCount int
	ProvenanceRiskScore  int
	Severity             SeverityLane
}

// HasTrade reports whether the selection is linked to a trade
func (s SelectionRow) HasTrade() bool {
	return s.TradeID != nil
}
