package store

import (
	"context"
	"time"

	"github.com/hoopsledger/pickboard/internal/domain"
)

// AssetRowFilter narrows asset row reads. Zero values mean "any".
type AssetRowFilter struct {
	DraftYears []int
	DraftRound int
	TeamCode   domain.TeamCode
}

// ProvenanceEdgeFilter narrows provenance edge reads. Zero values mean "any".
// TeamCode matches edges where the team is the sender, the receiver or the original owner.
type ProvenanceEdgeFilter struct {
	DraftYears []int
	DraftRound int
	TeamCode   domain.TeamCode
}

// DraftSelectionFilter narrows draft selection reads. Zero values mean "any".
// TeamCode matches the drafting team or the pick's original owner.
type DraftSelectionFilter struct {
	DraftYear  int
	DraftRound int
	TeamCode   domain.TeamCode
}

// Store defines the read-only interface over the draft asset warehouse
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// ListAssetRows retrieves asset rows ordered by year, round, team, slot, sub slot
	ListAssetRows(ctx context.Context, filter AssetRowFilter) ([]domain.AssetRow, error)
	// ListProvenanceEdges retrieves provenance edges ordered by trade date, then id
	ListProvenanceEdges(ctx context.Context, filter ProvenanceEdgeFilter) ([]domain.ProvenanceEdge, error)
	// GetEndnotesByIDs retrieves endnotes by id. Unknown ids are absent from the result.
	GetEndnotesByIDs(ctx context.Context, ids []int64) ([]domain.Endnote, error)
	// ListDraftSelections retrieves historical selections ordered by year, round, pick number
	ListDraftSelections(ctx context.Context, filter DraftSelectionFilter) ([]domain.DraftSelection, error)
	// ListTeamCodes retrieves the distinct original owners present in the warehouse
	ListTeamCodes(ctx context.Context) ([]domain.TeamCode, error)
	// GetWarehouseRefreshedAt retrieves the latest asset row refresh time, nil when unknown
	GetWarehouseRefreshedAt(ctx context.Context) (*time.Time, error)
}
