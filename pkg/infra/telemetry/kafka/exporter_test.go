package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/infra/cache/event"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	produced []*kafka.Message
	deliver  error
	silent   bool
	closed   bool
}

func (f *fakeProducer) Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error {
	f.produced = append(f.produced, msg)
	if f.silent {
		return nil
	}
	reply := *msg
	reply.TopicPartition.Error = f.deliver
	deliveryChan <- &reply
	return nil
}

func (f *fakeProducer) Flush(int) int { return 0 }
func (f *fakeProducer) Close()        { f.closed = true }

func testConfig() Config {
	return Config{Host: "localhost", Port: "9092", Topic: "trustguard.moderation"}
}

func TestExporter_Export(t *testing.T) {
	producer := &fakeProducer{}
	exporter := NewKafkaExporterWithProducer(testConfig(), producer)

	err := exporter.Export(context.Background(), event.CommentFlaggedEvent{CommentID: "c1", Source: event.SourceManual})
	require.NoError(t, err)

	require.Len(t, producer.produced, 1)
	msg := producer.produced[0]
	assert.Equal(t, "trustguard.moderation", *msg.TopicPartition.Topic)
	assert.Contains(t, string(msg.Value), `"type":"CommentFlaggedEvent"`)
	assert.Equal(t, "event_type", msg.Headers[0].Key)

	exporter.Close()
	assert.True(t, producer.closed)
}

func TestExporter_DeliveryFailure(t *testing.T) {
	producer := &fakeProducer{deliver: errors.New("broker down")}
	exporter := NewKafkaExporterWithProducer(testConfig(), producer)

	err := exporter.Export(context.Background(), event.CommentUnflaggedEvent{CommentID: "c1"})
	assert.ErrorContains(t, err, "broker down")
}

func TestExporter_ContextDone(t *testing.T) {
	exporter := NewKafkaExporterWithProducer(testConfig(), &fakeProducer{silent: true})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := exporter.Export(ctx, event.CommentUnflaggedEvent{CommentID: "c1"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, testConfig().Validate())
	assert.EqualError(t, Config{Host: "kafka"}.Validate(), "kafka port is required")
	assert.EqualError(t, Config{Port: "9092"}.Validate(), "kafka host is required")
	assert.EqualError(t, Config{Host: "kafka", Port: "9092"}.Validate(), "kafka topic is required")
}

func TestExporter_NoProducer(t *testing.T) {
	err := (&Exporter{}).Export(context.Background(), event.CommentUnflaggedEvent{})
	assert.ErrorIs(t, err, ErrProducerClosed)
}
