package auditor

import (
	"context"

	"github.com/hoopsledger/pickboard/internal/domain"
)

// Auditor defines the interface for background warehouse audits.
// Auditors are long-running tasks that periodically check warehouse invariants.
//
//go:generate mockgen -source=auditor.go -destination=../mocks/auditor.go -package=mocks -mock_names=Auditor=MockAuditor
type Auditor interface {
	// Start begins the auditor's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the auditor
	// This should wait for an in-progress run to complete
	Stop(ctx context.Context) error

	// RunOnce performs a single audit run and returns its report
	RunOnce(ctx context.Context) (*domain.AuditReport, error)

	// Name returns the auditor's name for logging and identification
	Name() string
}
