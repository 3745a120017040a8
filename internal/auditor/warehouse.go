package auditor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/hoopsledger/pickboard/internal/adapter"
	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/endnotes"
	"github.com/hoopsledger/pickboard/internal/logger"
	"github.com/hoopsledger/pickboard/internal/messaging"
	"github.com/hoopsledger/pickboard/internal/picks"
	"github.com/hoopsledger/pickboard/internal/registry"
	"github.com/hoopsledger/pickboard/internal/store"
)

const (
	AUDIT_CYCLE_INTERVAL     = 6 * time.Hour // Time to sleep between audit runs
	DEFAULT_WORKER_POOL_SIZE = 4
	DEFAULT_RETRY_MAX_ELAPSE = 2 * time.Minute
)

// WarehouseAuditorConfig holds configuration for the warehouse auditor
type WarehouseAuditorConfig struct {
	Interval        time.Duration // Time between runs
	YearsAhead      int           // Draft years audited, starting with the current draft
	WorkerPoolSize  int           // Concurrent per-year audits
	RetryMaxElapsed time.Duration // Total retry time for a failed warehouse read
}

// warehouseAuditor implements the Auditor interface for warehouse coverage checks
type warehouseAuditor struct {
	config    *WarehouseAuditorConfig
	store     store.Store
	teams     registry.TeamRegistry
	publisher messaging.Publisher
	clock     adapter.Clock
	running   atomic.Bool

	// mu guards the channels of the current run; each Start makes a new pair
	mu        sync.Mutex
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// yearAudit holds the findings for a single draft year
type yearAudit struct {
	year        int
	rowCount    int
	pickCount   int
	gaps        []domain.PickKey
	needsReview []domain.PickKey
	endnoteRefs []int64
}

// NewWarehouseAuditor creates a new warehouse auditor.
// teams may be nil, in which case the registry is derived from the warehouse on every run.
// publisher may be nil, in which case reports are only logged.
func NewWarehouseAuditor(
	config *WarehouseAuditorConfig,
	st store.Store,
	teams registry.TeamRegistry,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Auditor {
	cfg := *config
	if cfg.Interval <= 0 {
		cfg.Interval = AUDIT_CYCLE_INTERVAL
	}
	if cfg.YearsAhead <= 0 {
		cfg.YearsAhead = domain.GridWindowYears
	}
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	if cfg.RetryMaxElapsed <= 0 {
		cfg.RetryMaxElapsed = DEFAULT_RETRY_MAX_ELAPSE
	}

	return &warehouseAuditor{
		config:    &cfg,
		store:     st,
		teams:     teams,
		publisher: publisher,
		clock:     clock,
	}
}

// Name returns the auditor's name
func (a *warehouseAuditor) Name() string {
	return "warehouse-auditor"
}

// Start begins the auditor's main loop: one run immediately, then one per interval.
// A stopped auditor can be started again.
func (a *warehouseAuditor) Start(ctx context.Context) error {
	a.mu.Lock()
	if a.running.Load() {
		a.mu.Unlock()
		return fmt.Errorf("auditor already running")
	}
	a.running.Store(true)
	stop, stopped := make(chan struct{}), make(chan struct{})
	a.stopChan, a.stoppedCh = stop, stopped
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		if a.stoppedCh == stopped {
			a.running.Store(false)
		}
		a.mu.Unlock()
		close(stopped)
	}()

	logger.InfoCtx(ctx, "Starting warehouse auditor",
		zap.Duration("interval", a.config.Interval),
		zap.Int("years_ahead", a.config.YearsAhead),
		zap.Int("worker_pool_size", a.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Warehouse auditor stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-stop:
			logger.InfoCtx(ctx, "Warehouse auditor stop requested")
			return nil
		default:
			if _, err := a.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
			a.sleep(ctx, stop, a.config.Interval)
		}
	}
}

// Stop gracefully stops the auditor with timeout support
func (a *warehouseAuditor) Stop(ctx context.Context) error {
	a.mu.Lock()
	if !a.running.Load() {
		a.mu.Unlock()
		return nil
	}
	a.running.Store(false)
	stop, stopped := a.stopChan, a.stoppedCh
	a.mu.Unlock()

	logger.InfoCtx(ctx, "Stopping warehouse auditor")
	close(stop)

	select {
	case <-stopped:
		logger.InfoCtx(ctx, "Warehouse auditor stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Warehouse auditor stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunOnce audits every draft year in the window and publishes the report
func (a *warehouseAuditor) RunOnce(ctx context.Context) (*domain.AuditReport, error) {
	startedAt := a.clock.Now()
	runID := ulid.MustNewDefault(startedAt).String()
	years := a.years(startedAt)
	ctx = logger.WithRunID(ctx, runID)

	logger.InfoCtx(ctx, "Starting audit run", zap.Ints("years", years))

	teams, err := a.teamCodes(ctx)
	if err != nil {
		return nil, err
	}

	pool := pond.NewResultPool[*yearAudit](a.config.WorkerPoolSize, pond.WithContext(ctx))
	defer pool.StopAndWait()

	tasks := make([]pond.Result[*yearAudit], 0, len(years))
	for _, year := range years {
		tasks = append(tasks, pool.SubmitErr(func() (*yearAudit, error) {
			return a.auditYear(ctx, year, teams)
		}))
	}

	report := &domain.AuditReport{
		RunID:              runID,
		StartedAt:          startedAt,
		Years:              years,
		TeamCount:          len(teams),
		CoverageGaps:       []string{},
		NeedsReview:        []string{},
		MissingEndnoteRefs: []int64{},
	}

	var refs []int64
	for _, task := range tasks {
		result, err := task.Wait()
		if err != nil {
			return nil, err
		}
		report.RowCount += result.rowCount
		report.PickCount += result.pickCount
		for _, key := range result.gaps {
			report.CoverageGaps = append(report.CoverageGaps, key.String())
		}
		for _, key := range result.needsReview {
			report.NeedsReview = append(report.NeedsReview, key.String())
		}
		refs = append(refs, result.endnoteRefs...)
	}

	refs = endnotes.Unique(refs)
	if len(refs) > 0 {
		var found []domain.Endnote
		err := a.retry(ctx, "get endnotes", func() error {
			var err error
			found, err = a.store.GetEndnotesByIDs(ctx, refs)
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get endnotes: %w", err)
		}
		report.MissingEndnoteRefs = endnotes.MissingRefs(refs, found)
	}

	refreshedAt, err := a.store.GetWarehouseRefreshedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get warehouse refresh time: %w", err)
	}
	report.RefreshedAt = refreshedAt

	report.Status = domain.AuditStatusClean
	if report.HasFindings() {
		report.Status = domain.AuditStatusFindings
	}
	report.FinishedAt = a.clock.Now()

	logger.InfoCtx(ctx, "Audit run completed",
		zap.String("status", string(report.Status)),
		zap.Duration("duration", a.clock.Since(startedAt)),
		zap.Int("rows", report.RowCount),
		zap.Int("picks", report.PickCount),
		zap.Int("coverage_gaps", len(report.CoverageGaps)),
		zap.Int("needs_review", len(report.NeedsReview)),
		zap.Int("missing_endnote_refs", len(report.MissingEndnoteRefs)),
	)

	if a.publisher != nil {
		if err := a.publisher.PublishAuditReport(ctx, report); err != nil {
			// The report is still returned; the next run publishes a fresh one
			logger.ErrorCtx(ctx, fmt.Errorf("failed to publish audit report: %w", err))
		}
	}

	return report, nil
}

// auditYear aggregates one draft year and collects its findings
func (a *warehouseAuditor) auditYear(ctx context.Context, year int, teams []domain.TeamCode) (*yearAudit, error) {
	var rows []domain.AssetRow
	err := a.retry(ctx, "list asset rows", func() error {
		var err error
		rows, err = a.store.ListAssetRows(ctx, store.AssetRowFilter{DraftYears: []int{year}})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list asset rows for %d: %w", year, err)
	}

	summaries := picks.Aggregate(rows, nil)
	result := &yearAudit{
		year:        year,
		rowCount:    len(rows),
		pickCount:   len(summaries),
		gaps:        picks.CoverageGaps(summaries, teams, []int{year}, domain.Rounds(domain.RoundAll)),
		endnoteRefs: picks.ReferencedEndnoteIDs(rows),
	}
	for _, s := range summaries {
		if s.NeedsReview {
			result.needsReview = append(result.needsReview, s.Key())
		}
	}

	logger.DebugCtx(ctx, "Audited draft year",
		zap.Int("year", year),
		zap.Int("rows", result.rowCount),
		zap.Int("coverage_gaps", len(result.gaps)),
	)

	return result, nil
}

// teamCodes returns the registered teams, or the warehouse's distinct owners when no registry is configured
func (a *warehouseAuditor) teamCodes(ctx context.Context) ([]domain.TeamCode, error) {
	if a.teams != nil {
		return a.teams.Teams(), nil
	}

	codes, err := a.store.ListTeamCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team codes: %w", err)
	}
	reg, err := registry.FromCodes(codes)
	if err != nil {
		return nil, err
	}
	return reg.Teams(), nil
}

// years returns the audited draft years in ascending order
func (a *warehouseAuditor) years(now time.Time) []int {
	first := domain.CurrentDraftYear(now)
	years := make([]int, 0, a.config.YearsAhead)
	for i := 0; i < a.config.YearsAhead; i++ {
		years = append(years, first+i)
	}
	return years
}

// retry runs operation with exponential backoff until it succeeds or the elapsed budget runs out
func (a *warehouseAuditor) retry(ctx context.Context, name string, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = a.config.RetryMaxElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Warehouse read failed, retrying",
			zap.String("operation", name),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	return backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError)
}

// sleep sleeps for the given duration but can be interrupted by context cancellation or stop.
// Returns true if sleep completed normally.
func (a *warehouseAuditor) sleep(ctx context.Context, stop <-chan struct{}, duration time.Duration) bool {
	select {
	case <-a.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-stop:
		return false
	}
}
