package messaging

import (
	"context"

	"github.com/hoopsledger/pickboard/internal/domain"
)

// Publisher defines the interface for publishing audit reports to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishAuditReport publishes a finished warehouse audit report
	PublishAuditReport(ctx context.Context, report *domain.AuditReport) error
	// Close closes the connection
	Close()
}
