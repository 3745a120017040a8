package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/hoopsledger/pickboard/internal/adapter"
	"github.com/hoopsledger/pickboard/internal/api/shared/dto"
	apierrors "github.com/hoopsledger/pickboard/internal/api/shared/errors"
	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/endnotes"
	"github.com/hoopsledger/pickboard/internal/grid"
	"github.com/hoopsledger/pickboard/internal/lens"
	"github.com/hoopsledger/pickboard/internal/overlay"
	"github.com/hoopsledger/pickboard/internal/picks"
	"github.com/hoopsledger/pickboard/internal/provenance"
	"github.com/hoopsledger/pickboard/internal/registry"
	"github.com/hoopsledger/pickboard/internal/selection"
	"github.com/hoopsledger/pickboard/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// NormalizeSelection maps raw dashboard parameters onto their defaults-applied form
	NormalizeSelection(raw domain.RawSelection) domain.Selection

	// GetDashboard computes the view named by the selection and re-evaluates the overlay against it
	GetDashboard(ctx context.Context, raw domain.RawSelection) (*dto.DashboardResponse, error)

	// GetPicks retrieves the pick list for one draft year
	GetPicks(ctx context.Context, sel domain.Selection) (*dto.PickListResponse, error)

	// GetGrid retrieves the ownership grid for the window starting at the selected year
	GetGrid(ctx context.Context, sel domain.Selection) (*dto.GridResponse, error)

	// GetSelections retrieves classified historical selections for one draft year
	GetSelections(ctx context.Context, sel domain.Selection) (*dto.SelectionListResponse, error)

	// GetPick retrieves the detail payload of one pick. Returns nil when the pick has no rows.
	GetPick(ctx context.Context, key domain.PickKey) (*dto.PickDetailResponse, error)

	// GetHealth reports warehouse freshness
	GetHealth(ctx context.Context) (*dto.HealthResponse, error)
}

// Config holds executor settings
type Config struct {
	DefaultDraftYear int // 0 = the next draft as of now
	EndnoteMaxDepth  int
}

type executor struct {
	store  store.Store
	teams  registry.TeamRegistry
	clock  adapter.Clock
	config Config
}

// NewExecutor creates the executor shared by the REST API and the CLI.
// teams may be nil, in which case any well-formed team code is accepted and
// coverage gaps are computed over the warehouse's distinct owners.
func NewExecutor(st store.Store, teams registry.TeamRegistry, clock adapter.Clock, cfg Config) Executor {
	if cfg.EndnoteMaxDepth <= 0 {
		cfg.EndnoteMaxDepth = endnotes.DefaultMaxDepth
	}
	return &executor{store: st, teams: teams, clock: clock, config: cfg}
}

func (e *executor) NormalizeSelection(raw domain.RawSelection) domain.Selection {
	defaultYear := e.config.DefaultDraftYear
	if defaultYear <= 0 {
		defaultYear = domain.CurrentDraftYear(e.clock.Now())
	}

	var knownTeam func(domain.TeamCode) bool
	if e.teams != nil {
		knownTeam = e.teams.IsKnown
	}

	sel := domain.NormalizeSelection(raw, defaultYear, knownTeam)
	if sel.HasTeam() && e.teams != nil {
		if canonical, ok := e.teams.Canonical(sel.Team); ok {
			sel.Team = canonical
		}
	}
	return sel
}

func (e *executor) GetDashboard(ctx context.Context, raw domain.RawSelection) (*dto.DashboardResponse, error) {
	sel := e.NormalizeSelection(raw)
	resp := &dto.DashboardResponse{View: sel.View}

	var err error
	switch sel.View {
	case domain.ViewGrid:
		resp.Grid, err = e.GetGrid(ctx, sel)
	case domain.ViewSelections:
		resp.Selections, err = e.GetSelections(ctx, sel)
	default:
		resp.Picks, err = e.GetPicks(ctx, sel)
	}
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (e *executor) GetPicks(ctx context.Context, sel domain.Selection) (*dto.PickListResponse, error) {
	years := []int{sel.Year}

	rows, err := e.store.ListAssetRows(ctx, store.AssetRowFilter{DraftYears: years, DraftRound: sel.Round, TeamCode: sel.Team})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list asset rows: %v", err))
	}

	idx, err := e.provenanceIndex(ctx, store.ProvenanceEdgeFilter{DraftYears: years, DraftRound: sel.Round, TeamCode: sel.Team})
	if err != nil {
		return nil, err
	}

	summaries := picks.Aggregate(rows, idx)

	teams, err := e.teamUniverse(ctx, sel.Team)
	if err != nil {
		return nil, err
	}
	gaps := picks.CoverageGaps(summaries, teams, years, domain.Rounds(sel.Round))

	missing, err := e.missingEndnoteRefs(ctx, rows)
	if err != nil {
		return nil, err
	}

	visible := lens.Filter(summaries, lens.Pick(sel.Lens))
	picks.Sort(visible, sel.Sort)

	decision := overlay.ResolvePick(overlay.FromSelection(sel), visible)
	overlayResp, err := e.pickOverlay(ctx, decision)
	if err != nil {
		return nil, err
	}

	return &dto.PickListResponse{
		Selection:          dto.MapSelectionToDTO(sel),
		Picks:              dto.MapPickSummariesToDTO(visible),
		Total:              len(visible),
		CoverageGaps:       dto.MapPickKeysToDTO(gaps),
		MissingEndnoteRefs: missing,
		Overlay:            overlayResp,
		RefreshedAt:        latestRefresh(summaries),
	}, nil
}

func (e *executor) GetGrid(ctx context.Context, sel domain.Selection) (*dto.GridResponse, error) {
	opts := grid.Options{
		StartYear: sel.Year,
		Round:     sel.Round,
		Team:      sel.Team,
		Sort:      sel.Sort,
		Lens:      sel.Lens,
	}
	years := opts.Years()

	rows, err := e.store.ListAssetRows(ctx, store.AssetRowFilter{DraftYears: years, DraftRound: sel.Round, TeamCode: sel.Team})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list asset rows: %v", err))
	}

	idx, err := e.provenanceIndex(ctx, store.ProvenanceEdgeFilter{DraftYears: years, DraftRound: sel.Round, TeamCode: sel.Team})
	if err != nil {
		return nil, err
	}

	summaries := picks.Aggregate(rows, idx)
	g := grid.Build(summaries, opts)

	decision := overlay.ResolveCell(overlay.FromSelection(sel), g.VisibleCells())
	overlayResp, err := e.pickOverlay(ctx, decision)
	if err != nil {
		return nil, err
	}

	return &dto.GridResponse{
		Selection:   dto.MapSelectionToDTO(sel),
		Years:       g.Years,
		Rounds:      g.Rounds,
		Teams:       dto.MapGridTeamsToDTO(g),
		Overlay:     overlayResp,
		RefreshedAt: latestRefresh(summaries),
	}, nil
}

func (e *executor) GetSelections(ctx context.Context, sel domain.Selection) (*dto.SelectionListResponse, error) {
	selections, err := e.store.ListDraftSelections(ctx, store.DraftSelectionFilter{DraftYear: sel.Year, DraftRound: sel.Round, TeamCode: sel.Team})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list draft selections: %v", err))
	}

	// The team filter is left off the edges: a selection also matches edges of its original owner
	idx, err := e.provenanceIndex(ctx, store.ProvenanceEdgeFilter{DraftYears: []int{sel.Year}, DraftRound: sel.Round})
	if err != nil {
		return nil, err
	}

	rows := selection.ClassifyAll(selections, idx)
	rows = lens.Filter(rows, lens.Selection(sel.Lens))
	selection.Sort(rows, sel.Sort)

	decision := overlay.ResolveSelection(overlay.FromSelection(sel), rows)
	overlayResp := dto.MapDecisionToDTO(decision)
	if decision.Visible() {
		overlayResp.Selection = selectionDetail(decision, rows, selections, idx)
		if overlayResp.Selection == nil {
			overlayResp = dto.MapDecisionToDTO(overlay.Cleared())
		}
	}

	return &dto.SelectionListResponse{
		Selection:      dto.MapSelectionToDTO(sel),
		Lanes:          dto.MapLanesToDTO(selection.Lanes(rows)),
		SeverityCounts: selection.Counts(rows),
		Total:          len(rows),
		Overlay:        overlayResp,
	}, nil
}

func (e *executor) GetPick(ctx context.Context, key domain.PickKey) (*dto.PickDetailResponse, error) {
	years := []int{key.DraftYear}

	rows, err := e.store.ListAssetRows(ctx, store.AssetRowFilter{DraftYears: years, DraftRound: key.DraftRound, TeamCode: key.TeamCode})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list asset rows: %v", err))
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idx, err := e.provenanceIndex(ctx, store.ProvenanceEdgeFilter{DraftYears: years, DraftRound: key.DraftRound, TeamCode: key.TeamCode})
	if err != nil {
		return nil, err
	}

	var summary *domain.PickSummary
	for _, s := range picks.Aggregate(rows, idx) {
		if s.Key() == key {
			summary = &s
			break
		}
	}
	if summary == nil {
		return nil, nil
	}

	resolved, err := endnotes.Resolve(ctx, e.store, picks.ReferencedEndnoteIDs(rows), e.config.EndnoteMaxDepth)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to resolve endnotes: %v", err))
	}

	return &dto.PickDetailResponse{
		Pick:                  dto.MapPickSummaryToDTO(*summary),
		AssetLines:            dto.MapAssetRowsToDTO(rows),
		Provenance:            dto.MapProvenanceEdgesToDTO(idx.Edges(key)),
		Endnotes:              dto.MapEndnotesToDTO(resolved.Endnotes),
		EndnoteDependencies:   dto.MapEndnotesToDTO(resolved.Dependencies),
		MissingEndnoteRefs:    resolved.Missing,
		MissingDependencyRefs: resolved.MissingDependencies,
	}, nil
}

func (e *executor) GetHealth(ctx context.Context) (*dto.HealthResponse, error) {
	refreshedAt, err := e.store.GetWarehouseRefreshedAt(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get warehouse refresh time: %v", err))
	}
	return &dto.HealthResponse{Status: "ok", RefreshedAt: refreshedAt}, nil
}

// provenanceIndex loads and indexes the edges matching filter
func (e *executor) provenanceIndex(ctx context.Context, filter store.ProvenanceEdgeFilter) (*provenance.Index, error) {
	edges, err := e.store.ListProvenanceEdges(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list provenance edges: %v", err))
	}
	return provenance.NewIndex(edges), nil
}

// teamUniverse returns the teams a pick is expected for
func (e *executor) teamUniverse(ctx context.Context, team domain.TeamCode) ([]domain.TeamCode, error) {
	if team != "" {
		return []domain.TeamCode{team}, nil
	}
	if e.teams != nil {
		return e.teams.Teams(), nil
	}

	codes, err := e.store.ListTeamCodes(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list team codes: %v", err))
	}
	reg, err := registry.FromCodes(codes)
	if err != nil {
		// An empty warehouse has no teams and therefore no gaps
		return []domain.TeamCode{}, nil
	}
	return reg.Teams(), nil
}

// missingEndnoteRefs returns the endnote ids the rows reference that the warehouse does not hold
func (e *executor) missingEndnoteRefs(ctx context.Context, rows []domain.AssetRow) ([]int64, error) {
	refs := picks.ReferencedEndnoteIDs(rows)
	if len(refs) == 0 {
		return []int64{}, nil
	}

	found, err := e.store.GetEndnotesByIDs(ctx, refs)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get endnotes: %v", err))
	}
	return endnotes.MissingRefs(refs, found), nil
}

// pickOverlay attaches the pick detail payload to a visible decision
func (e *executor) pickOverlay(ctx context.Context, decision overlay.Decision) (dto.OverlayResponse, error) {
	resp := dto.MapDecisionToDTO(decision)
	if !decision.Visible() || decision.Selector == nil {
		return resp, nil
	}

	key, ok := domain.ParsePickKey(decision.Selector.Key)
	if !ok {
		return dto.MapDecisionToDTO(overlay.Cleared()), nil
	}

	detail, err := e.GetPick(ctx, key)
	if err != nil {
		return dto.OverlayResponse{}, err
	}
	if detail == nil {
		return dto.MapDecisionToDTO(overlay.Cleared()), nil
	}

	resp.Pick = detail
	return resp, nil
}

// selectionDetail builds the overlay payload of the selection a visible decision refers to
func selectionDetail(decision overlay.Decision, rows []domain.SelectionRow, selections []domain.DraftSelection, idx *provenance.Index) *dto.SelectionDetailResponse {
	id, ok := domain.ParseSelectionID(decision.Selector.Key)
	if !ok {
		return nil
	}

	for _, row := range rows {
		if row.TransactionID != id {
			continue
		}
		for _, s := range selections {
			if s.TransactionID == id {
				return &dto.SelectionDetailResponse{
					Selection:  dto.MapSelectionRowToDTO(row),
					Provenance: dto.MapProvenanceEdgesToDTO(idx.SelectionEdges(s)),
				}
			}
		}
	}
	return nil
}

// latestRefresh returns the most recent refresh time among summaries, nil when unknown
func latestRefresh(summaries []domain.PickSummary) *time.Time {
	var latest *time.Time
	for _, s := range summaries {
		if s.RefreshedAt != nil && (latest == nil || s.RefreshedAt.After(*latest)) {
			t := *s.RefreshedAt
			latest = &t
		}
	}
	return latest
}
