package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache"
	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/confluentinc/confluent-kafka-go/kafka"
)

const (
	ExporterName = "kafka"
	flushTimeout = 5000
)

var ErrProducerClosed = errors.New("kafka producer is not initialized")

type Config struct {
	Host  string `mapstructure:"host"`
	Port  string `mapstructure:"port"`
	Topic string `mapstructure:"topic"`
}

func (c Config) Validate() error {
	if c.Host == "" {
		return errors.New("kafka host is required")
	}
	if c.Port == "" {
		return errors.New("kafka port is required")
	}
	if c.Topic == "" {
		return errors.New("kafka topic is required")
	}
	return nil
}

// Producer is the subset of *kafka.Producer the exporter uses.
type Producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// Exporter writes moderation events to a Kafka topic for audit.
type Exporter struct {
	cfg      Config
	producer Producer
}

func NewKafkaExporter(cfg Config) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaExporterWithProducer(cfg, producer), nil
}

func NewKafkaExporterWithProducer(cfg Config, producer Producer) *Exporter {
	return &Exporter{cfg: cfg, producer: producer}
}

func (p *Exporter) Name() string {
	return ExporterName
}

// Export blocks until the broker acknowledges ev or ctx is done.
func (p *Exporter) Export(ctx context.Context, ev event.Event) error {
	if p.producer == nil {
		return ErrProducerClosed
	}
	data, err := cache.EncodeMessage(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.cfg.Topic, Partition: kafka.PartitionAny},
		Value:          data,
		Headers:        []kafka.Header{{Key: "event_type", Value: []byte(ev.Type())}},
		Timestamp:      time.Now(),
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event: %v", e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("delivery failed: %w", m.TopicPartition.Error)
		}
		return nil
	}
}

func (p *Exporter) Close() {
	if p.producer != nil {
		p.producer.Flush(flushTimeout)
		p.producer.Close()
	}
}
