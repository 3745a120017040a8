package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ProvenanceEdge represents the pick_provenance_edges table - one trade-linked transfer of a pick
type ProvenanceEdge struct {
	// ID is the warehouse primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// TradeID groups edges conveyed by the same trade
	TradeID   int64      `gorm:"column:trade_id;not null;type:bigint;index"`
	TradeDate *time.Time `gorm:"column:trade_date;type:date"`
	// DraftYear and DraftRound identify the pick being conveyed
	DraftYear  int `gorm:"column:draft_year;not null;type:integer;index:idx_pick_provenance_edges_year_round,priority:1"`
	DraftRound int `gorm:"column:draft_round;not null;type:integer;index:idx_pick_provenance_edges_year_round,priority:2"`

	FromTeamCode     string  `gorm:"column:from_team_code;not null;type:text"`
	ToTeamCode       string  `gorm:"column:to_team_code;not null;type:text"`
	OriginalTeamCode string  `gorm:"column:original_team_code;not null;type:text"`
	IsSwap           bool    `gorm:"column:is_swap;not null;default:false"`
	IsFuture         bool    `gorm:"column:is_future;not null;default:false"`
	IsConditional    bool    `gorm:"column:is_conditional;not null;default:false"`
	ConditionalType  *string `gorm:"column:conditional_type;type:text"`
	// IsDraftYearPlusTwo marks picks conveyed more than one draft ahead
	IsDraftYearPlusTwo bool `gorm:"column:is_draft_year_plus_two;not null;default:false"`
	// Raw keeps the ingested trade line as JSON for audit
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
}

// TableName specifies the table name for the ProvenanceEdge model
func (ProvenanceEdge) TableName() string {
	return "pick_provenance_edges"
}
