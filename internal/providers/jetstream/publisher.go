package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/hoopsledger/pickboard/internal/adapter"
	"github.com/hoopsledger/pickboard/internal/domain"
	"github.com/hoopsledger/pickboard/internal/logger"
	"github.com/hoopsledger/pickboard/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc            adapter.NatsConn
	js            adapter.JetStream
	subjectPrefix string
	json          adapter.JSON
}

// NewPublisher connects to NATS, ensures the audit stream exists and returns a publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	if cfg.StreamName == "" {
		cfg.StreamName = domain.AUDIT_STREAM_NAME
	}
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = domain.AUDIT_SUBJECT_PREFIX
	}

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	err = js.CreateOrUpdateStream(ctx, natsjs.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.SubjectPrefix + ".>"},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:            nc,
		js:            js,
		subjectPrefix: cfg.SubjectPrefix,
		json:          jsonAdapter,
	}, nil
}

// PublishAuditReport publishes an audit report to NATS JetStream
func (p *publisher) PublishAuditReport(ctx context.Context, report *domain.AuditReport) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	data, err := p.json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal audit report: %w", err)
	}

	subject := p.buildSubject(report)
	logger.DebugCtx(ctx, "Publishing audit report", zap.String("subject", subject), zap.String("run_id", report.RunID))

	// the run id doubles as the message id so a retried publish is deduplicated
	_, err = p.js.Publish(ctx, subject, data, natsjs.WithMsgID(report.RunID))
	if err != nil {
		return fmt.Errorf("failed to publish audit report: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject: {prefix}.{status}, e.g. pickboard.audit.findings
func (p *publisher) buildSubject(report *domain.AuditReport) string {
	status := report.Status
	if status == "" {
		status = domain.AuditStatusClean
		if report.HasFindings() {
			status = domain.AuditStatusFindings
		}
	}
	return fmt.Sprintf("%s.%s", p.subjectPrefix, status)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
