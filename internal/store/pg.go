package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/logger"
	"github.com/hoopsledger/pickboard/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, defaults from NormalizeConnectionPoolSettings are used.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// ListAssetRows retrieves asset rows matching the filter
func (s *pgStore) ListAssetRows(ctx context.Context, filter AssetRowFilter) ([]domain.AssetRow, error) {
	query := s.db.WithContext(ctx).Model(&schema.AssetRow{})

	if len(filter.DraftYears) > 0 {
		query = query.Where("draft_year IN ?", filter.DraftYears)
	}
	if filter.DraftRound > 0 {
		query = query.Where("draft_round = ?", filter.DraftRound)
	}
	if filter.TeamCode != "" {
		query = query.Where("team_code = ?", string(filter.TeamCode))
	}

	var rows []schema.AssetRow
	err := query.
		Order("draft_year ASC").
		Order("draft_round ASC").
		Order("team_code ASC").
		Order("asset_slot ASC").
		Order("sub_asset_slot ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list asset rows: %w", err)
	}

	logger.DebugCtx(ctx, "Listed asset rows",
		zap.Ints("draftYears", filter.DraftYears),
		zap.Int("draftRound", filter.DraftRound),
		zap.String("teamCode", string(filter.TeamCode)),
		zap.Int("count", len(rows)))

	return toDomainAssetRows(rows), nil
}

// ListProvenanceEdges retrieves provenance edges matching the filter
func (s *pgStore) ListProvenanceEdges(ctx context.Context, filter ProvenanceEdgeFilter) ([]domain.ProvenanceEdge, error) {
	query := s.db.WithContext(ctx).Model(&schema.ProvenanceEdge{})

	if len(filter.DraftYears) > 0 {
		query = query.Where("draft_year IN ?", filter.DraftYears)
	}
	if filter.DraftRound > 0 {
		query = query.Where("draft_round = ?", filter.DraftRound)
	}
	if filter.TeamCode != "" {
		team := string(filter.TeamCode)
		query = query.Where("from_team_code = ? OR to_team_code = ? OR original_team_code = ?", team, team, team)
	}

	var edges []schema.ProvenanceEdge
	err := query.
		Order("trade_date ASC NULLS LAST").
		Order("id ASC").
		Find(&edges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list provenance edges: %w", err)
	}

	return toDomainProvenanceEdges(edges), nil
}

// GetEndnotesByIDs retrieves endnotes by id
func (s *pgStore) GetEndnotesByIDs(ctx context.Context, ids []int64) ([]domain.Endnote, error) {
	if len(ids) == 0 {
		return []domain.Endnote{}, nil
	}

	var notes []schema.Endnote
	err := s.db.WithContext(ctx).
		Where("endnote_id IN ?", ids).
		Order("endnote_id ASC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get endnotes by ids: %w", err)
	}

	return toDomainEndnotes(notes), nil
}

// ListDraftSelections retrieves historical selections matching the filter
func (s *pgStore) ListDraftSelections(ctx context.Context, filter DraftSelectionFilter) ([]domain.DraftSelection, error) {
	query := s.db.WithContext(ctx).Model(&schema.DraftSelection{})

	if filter.DraftYear > 0 {
		query = query.Where("draft_year = ?", filter.DraftYear)
	}
	if filter.DraftRound > 0 {
		query = query.Where("draft_round = ?", filter.DraftRound)
	}
	if filter.TeamCode != "" {
		team := string(filter.TeamCode)
		query = query.Where("team_code = ? OR original_team_code = ?", team, team)
	}

	var selections []schema.DraftSelection
	err := query.
		Order("draft_year ASC").
		Order("draft_round ASC").
		Order("pick_number ASC").
		Order("transaction_id ASC").
		Find(&selections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list draft selections: %w", err)
	}

	return toDomainDraftSelections(selections), nil
}

// ListTeamCodes retrieves the distinct original owners present in the warehouse
func (s *pgStore) ListTeamCodes(ctx context.Context) ([]domain.TeamCode, error) {
	var codes []string
	err := s.db.WithContext(ctx).
		Model(&schema.AssetRow{}).
		Distinct("team_code").
		Order("team_code ASC").
		Pluck("team_code", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list team codes: %w", err)
	}

	return toTeamCodes(codes), nil
}

// GetWarehouseRefreshedAt retrieves the latest asset row refresh time
func (s *pgStore) GetWarehouseRefreshedAt(ctx context.Context) (*time.Time, error) {
	var refreshedAt sql.NullTime
	err := s.db.WithContext(ctx).
		Model(&schema.AssetRow{}).
		Select("MAX(refreshed_at)").
		Row().
		Scan(&refreshedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get warehouse refreshed at: %w", err)
	}

	if !refreshedAt.Valid {
		return nil, nil
	}
	t := refreshedAt.Time
	return &t, nil
}
