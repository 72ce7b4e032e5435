package events

import (
	"context"
	"encoding/json"
	"time"

	"kind_contact_server/internal/config"
	"kind_contact_server/pkg/errorx"

	"github.com/segmentio/kafka-go"
)

// KafkaWriter publishes sync events to a topic so external consumers can
// audit reconciliation runs.
type KafkaWriter struct {
	writer *kafka.Writer
}

// NewKafkaWriter builds the writer from the events config.
func NewKafkaWriter(conf *config.EventsConfig) *KafkaWriter {
	timeout := conf.Timeout
	if timeout == 0 {
		timeout = 10
	}
	return &KafkaWriter{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(conf.HostPort),
			Topic:                  conf.SyncTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           time.Duration(timeout) * time.Second,
			RequiredAcks:           kafka.RequireNone,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *KafkaWriter) WriteEvent(ctx context.Context, event SyncEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "encode sync event")
	}
	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.RunID),
		Value: payload,
	})
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "publish sync event")
	}
	return nil
}

func (k *KafkaWriter) Close() error {
	return k.writer.Close()
}
