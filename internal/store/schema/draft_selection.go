package schema

import "time"

// DraftSelection represents the draft_selections table - picks actually used on a player
type DraftSelection struct {
	TransactionID int64  `gorm:"column:transaction_id;primaryKey;autoIncrement:false"`
	DraftYear     int    `gorm:"column:draft_year;not null;type:integer;index"`
	DraftRound    int    `gorm:"column:draft_round;not null;type:integer"`
	PickNumber    int    `gorm:"column:pick_number;not null;type:integer"`
	PlayerID      int64  `gorm:"column:player_id;not null;type:bigint"`
	PlayerName    string `gorm:"column:player_name;not null;type:text"`
	// TeamCode is the team that made the selection
	TeamCode string `gorm:"column:team_code;not null;type:text"`
	// OriginalTeamCode is the pick's original owner when it was acquired by trade
	OriginalTeamCode *string    `gorm:"column:original_team_code;type:text"`
	TradeID          *int64     `gorm:"column:trade_id;type:bigint"`
	SelectedAt       *time.Time `gorm:"column:selected_at;type:timestamptz"`
}

// TableName specifies the table name for the DraftSelection model
func (DraftSelection) TableName() string {
	return "draft_selections"
}
