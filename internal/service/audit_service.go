package service

import (
	"context"
	"encoding/json"
	"sync"

	"cash-wallet-ledger/internal/core/domain"
	"cash-wallet-ledger/internal/core/ports"

	"github.com/rs/zerolog"
)

// AuditService implements ports.AuditSink.
type AuditService struct {
	repo      ports.AuditRepository
	publisher ports.AuditPublisher
	log       zerolog.Logger
	wg        sync.WaitGroup
}

// NewAuditService creates a new audit service.
// If repo is nil, audit events are only written to the logger. A nil publisher disables broker fan-out.
func NewAuditService(repo ports.AuditRepository, publisher ports.AuditPublisher, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, publisher: publisher, log: log}
}

// Record stores an audit event asynchronously (fire-and-forget).
func (s *AuditService) Record(ctx context.Context, event *domain.AuditEvent) {
	ctx = context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.log.Info().
			Str("action", string(event.Action)).
			Str("company_id", event.CompanyID.String()).
			Str("resource_type", event.ResourceType).
			Str("resource_id", event.ResourceID).
			Msg("audit")

		if s.repo != nil {
			if err := s.repo.Create(ctx, event); err != nil {
				s.log.Warn().Err(err).Str("action", string(event.Action)).Msg("failed to persist audit event")
			}
		}
		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, event); err != nil {
				s.log.Warn().Err(err).Str("action", string(event.Action)).Msg("failed to publish audit event")
			}
		}
	}()
}

// Wait blocks until every pending event has been handled. Used on shutdown.
func (s *AuditService) Wait() {
	s.wg.Wait()
}

func recordAudit(ctx context.Context, sink ports.AuditSink, event *domain.AuditEvent) {
	if sink != nil {
		sink.Record(ctx, event)
	}
}

func auditDetails(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
