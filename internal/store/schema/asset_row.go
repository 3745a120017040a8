package schema

import (
	"time"

	"github.com/lib/pq"
)

// AssetRow represents the draft_asset_rows table - one warehouse fragment of a pick's disposition
type AssetRow struct {
	// TeamCode is the original owner of the pick
	TeamCode string `gorm:"column:team_code;primaryKey;type:text"`
	// DraftYear is the draft the pick belongs to
	DraftYear int `gorm:"column:draft_year;primaryKey;type:integer;index:idx_draft_asset_rows_year_round,priority:1"`
	// DraftRound is the draft round (1 or 2)
	DraftRound int `gorm:"column:draft_round;primaryKey;type:integer;index:idx_draft_asset_rows_year_round,priority:2"`
	// AssetSlot orders fragments within a pick
	AssetSlot int `gorm:"column:asset_slot;primaryKey;type:integer"`
	// SubAssetSlot orders alternatives within a slot
	SubAssetSlot int `gorm:"column:sub_asset_slot;primaryKey;type:integer"`
	// AssetType is OWN, TO, HAS or OTHER
	AssetType     string `gorm:"column:asset_type;not null;type:text"`
	IsForfeited   bool   `gorm:"column:is_forfeited;not null;default:false"`
	IsSwap        bool   `gorm:"column:is_swap;not null;default:false"`
	IsConditional bool   `gorm:"column:is_conditional;not null;default:false"`
	// CounterpartyTeamCode is the structured destination, when the warehouse resolved one
	CounterpartyTeamCode  *string        `gorm:"column:counterparty_team_code;type:text"`
	CounterpartyTeamCodes pq.StringArray `gorm:"column:counterparty_team_codes;type:text[]"`
	ViaTeamCodes          pq.StringArray `gorm:"column:via_team_codes;type:text[]"`
	// DisplayText is the rendered fragment, e.g. "To LAL: top-4 protected"
	DisplayText         *string       `gorm:"column:display_text;type:text"`
	PrimaryEndnoteID    *int64        `gorm:"column:primary_endnote_id;type:bigint"`
	EffectiveEndnoteIDs pq.Int64Array `gorm:"column:effective_endnote_ids;type:bigint[]"`
	// NeedsReview is set by ingestion when the fragment could not be parsed cleanly
	NeedsReview bool `gorm:"column:needs_review;not null;default:false"`
	// RefreshedAt is the time the warehouse last rebuilt this row
	RefreshedAt *time.Time `gorm:"column:refreshed_at;type:timestamptz"`
}

// TableName specifies the table name for the AssetRow model
func (AssetRow) TableName() string {
	return "draft_asset_rows"
}
