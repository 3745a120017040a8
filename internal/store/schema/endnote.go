package schema

import (
	"time"

	"github.com/lib/pq"
)

// Endnote represents the trade_endnotes table
type Endnote struct {
	EndnoteID   int64      `gorm:"column:endnote_id;primaryKey;autoIncrement:false"`
	TradeID     *int64     `gorm:"column:trade_id;type:bigint"`
	TradeDate   *time.Time `gorm:"column:trade_date;type:date"`
	Explanation *string    `gorm:"column:explanation;type:text"`
	Protections *string    `gorm:"column:protections;type:text"`
	Contingency *string    `gorm:"column:contingency;type:text"`
	Exercise    *string    `gorm:"column:exercise;type:text"`

	IsSwap         bool          `gorm:"column:is_swap;not null;default:false"`
	IsConditional  bool          `gorm:"column:is_conditional;not null;default:false"`
	DraftYearStart *int          `gorm:"column:draft_year_start;type:integer"`
	DraftYearEnd   *int          `gorm:"column:draft_year_end;type:integer"`
	DraftRounds    pq.Int64Array `gorm:"column:draft_rounds;type:integer[]"`
	// DependsOnEndnotes chains to further endnotes that qualify this one
	DependsOnEndnotes pq.Int64Array `gorm:"column:depends_on_endnotes;type:bigint[]"`
}

// TableName specifies the table name for the Endnote model
func (Endnote) TableName() string {
	return "trade_endnotes"
}
