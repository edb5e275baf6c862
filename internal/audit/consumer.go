package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"triply/internal/shared/config"
	"triply/pkg/logger"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Sink receives decoded audit events
type Sink interface {
	Handle(ctx context.Context, event *Event) error
}

// LogSink writes every event as a structured log line
type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Handle(_ context.Context, event *Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID.String()),
		zap.String("event_type", string(event.Type)),
		zap.Time("occurred_at", event.OccurredAt),
	}
	if event.UserID != "" {
		fields = append(fields, zap.String("user_id", event.UserID))
	}
	if event.Subject != "" {
		fields = append(fields, zap.String("subject", event.Subject))
	}
	for k, v := range event.Attributes {
		fields = append(fields, zap.String("attr."+k, v))
	}
	s.log.Info("audit event", fields...)
	return nil
}

// Consumer reads the audit topic as part of a consumer group
type Consumer struct {
	group sarama.ConsumerGroup
	topic string
	sink  Sink
	log   *logger.Logger
}

// NewConsumer joins the configured consumer group
func NewConsumer(cfg config.KafkaConfig, sink Sink, log *logger.Logger) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return NewConsumerWithGroup(group, cfg.AuditTopic, sink, log), nil
}

func NewConsumerWithGroup(group sarama.ConsumerGroup, topic string, sink Sink, log *logger.Logger) *Consumer {
	return &Consumer{group: group, topic: topic, sink: sink, log: log}
}

// Run consumes until ctx is cancelled. Rebalances end a Consume call, so it
// is called again in a loop.
func (c *Consumer) Run(ctx context.Context) error {
	go func() {
		for err := range c.group.Errors() {
			c.log.Warn("audit consumer group error", zap.Error(err))
		}
	}()

	handler := &groupHandler{sink: c.sink, log: c.log}
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			c.log.Error("audit consume failed", zap.Error(err))
			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
			}
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

type groupHandler struct {
	sink Sink
	log  *logger.Logger
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.process(session.Context(), msg); err != nil {
				h.log.Warn("skipping audit message",
					zap.Int32("partition", msg.Partition),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
			}
			// undecodable messages are marked too so they do not block the partition
			session.MarkMessage(msg, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *groupHandler) process(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("decode audit event: %w", err)
	}
	if event.Type == "" {
		return errors.New("audit event without type")
	}
	return h.sink.Handle(ctx, &event)
}
