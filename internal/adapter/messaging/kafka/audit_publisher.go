// Package kafka publishes ledger audit events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"cash-wallet-ledger/config"
	"cash-wallet-ledger/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"
)

// producer is the subset of *kgo.Client the publisher uses.
type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Ping(ctx context.Context) error
	Close()
}

// AuditPublisher implements ports.AuditPublisher. Events are keyed by company
// so one tenant's events stay ordered within a partition.
type AuditPublisher struct {
	client producer
	topic  string
}

// NewAuditPublisher connects to the configured brokers.
func NewAuditPublisher(ctx context.Context, cfg config.KafkaConfig, log zerolog.Logger) (*AuditPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.Topic),
		kgo.ClientID(cfg.ClientID),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kafka client: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging kafka: %w", err)
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic", cfg.Topic).
		Msg("Kafka audit publisher connected")

	return newAuditPublisher(client, cfg.Topic), nil
}

func newAuditPublisher(client producer, topic string) *AuditPublisher {
	return &AuditPublisher{client: client, topic: topic}
}

// Publish writes the event and waits for the broker acknowledgement.
func (p *AuditPublisher) Publish(ctx context.Context, event *domain.AuditEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding audit event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.CompanyID.String()),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "action", Value: []byte(event.Action)},
		},
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("producing audit event: %w", err)
	}
	return nil
}

// Ping implements ports.HealthChecker.
func (p *AuditPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Name returns the dependency name.
func (p *AuditPublisher) Name() string {
	return "kafka"
}

// Close flushes and closes the client.
func (p *AuditPublisher) Close() {
	p.client.Close()
}
