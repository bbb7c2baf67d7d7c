package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/pkg/circuitbreaker"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

// MessageWriter is the subset of *kafka.Writer the sink uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Event struct {
	SessionID   string          `json:"session_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Severity    domain.Severity `json:"severity"`
	EmittedAt   time.Time       `json:"emitted_at"`
}

// KafkaSink publishes notifications keyed by session id. Writes go through a circuit breaker
// so a broker outage costs one fast failure per request instead of a write timeout.
type KafkaSink struct {
	writer  MessageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
	timeout time.Duration
	log     *slog.Logger
}

func NewKafkaWriter(topic string, brokers ...string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaSink(writer MessageWriter, log *slog.Logger) *KafkaSink {
	return &KafkaSink{
		writer:  writer,
		breaker: circuitbreaker.New[struct{}](circuitbreaker.DefaultConfig("kafka-notifications"), log),
		timeout: 2 * time.Second,
		log:     log,
	}
}

func (s *KafkaSink) Notify(ctx context.Context, sessionID string, n domain.Notification) {
	payload, err := json.Marshal(Event{
		SessionID:   sessionID,
		Title:       n.Title,
		Description: n.Description,
		Severity:    n.Severity,
		EmittedAt:   time.Now().UTC(),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "marshal notification failed", "err", err)
		return
	}

	_, err = s.breaker.Execute(func() (struct{}, error) {
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return struct{}{}, s.writer.WriteMessages(writeCtx, kafka.Message{
			Key:   []byte(sessionID),
			Value: payload,
		})
	})
	if err != nil {
		s.log.WarnContext(ctx, "publish notification failed", "session_id", sessionID, "err", err)
	}
}
