package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/stateair-etl/internal/config"
	"github.com/couchcryptid/stateair-etl/internal/domain"
)

// messageWriter is the subset of kafkago.Writer used by Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer produces measurement messages to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer messageWriter
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaSinkTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes one source's measurements to the sink
// topic in a single WriteMessages call. Messages share the batch's run id and
// processing stamp.
func (w *Writer) LoadBatch(ctx context.Context, batch domain.Batch) error {
	if len(batch.Measurements) == 0 {
		return nil
	}
	processedAt := domain.Now()
	msgs := make([]kafkago.Message, len(batch.Measurements))
	for i := range batch.Measurements {
		msg, err := serializeToMessage(batch.Measurements[i], batch.RunID, processedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d messages: %w", len(msgs), err)
	}
	w.logger.Debug("batch published", "source", batch.Source, "run_id", batch.RunID, "messages", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// messageKey groups a reading's revisions onto one partition.
func messageKey(m domain.Measurement) string {
	return m.Location + "|" + string(m.Parameter) + "|" + m.Date.UTC
}

// serializeToMessage marshals a Measurement into a Kafka message.
func serializeToMessage(m domain.Measurement, runID string, processedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize measurement: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(messageKey(m)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "parameter", Value: []byte(m.Parameter)},
			{Key: "processed_at", Value: []byte(processedAt.Format(time.RFC3339))},
			{Key: "run_id", Value: []byte(runID)},
		},
	}, nil
}
