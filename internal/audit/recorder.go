package audit

import (
	"context"
	"time"

	"triply/internal/shared/config"
	"triply/pkg/logger"

	"go.uber.org/zap"
)

// Recorder publishes events on behalf of services. Publishing failures are
// logged and never fail the request that produced the event.
type Recorder struct {
	publisher Publisher
	log       *logger.Logger
	timeout   time.Duration
}

// DefaultPublishTimeout bounds how long Record holds up the caller.
const DefaultPublishTimeout = 2 * time.Second

// RecorderOption customizes a Recorder
type RecorderOption func(*Recorder)

// WithPublishTimeout overrides DefaultPublishTimeout. Non-positive values are ignored.
func WithPublishTimeout(d time.Duration) RecorderOption {
	return func(r *Recorder) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewRecorder(publisher Publisher, log *logger.Logger, opts ...RecorderOption) *Recorder {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if log == nil {
		log = logger.Nop()
	}
	r := &Recorder{publisher: publisher, log: log, timeout: DefaultPublishTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRecorderFromConfig connects to Kafka when brokers are configured and
// falls back to a no-op publisher otherwise.
func NewRecorderFromConfig(cfg config.KafkaConfig, log *logger.Logger) (*Recorder, error) {
	if len(cfg.Brokers) == 0 {
		log.Info("Kafka brokers not configured, audit events disabled")
		return NewRecorder(NopPublisher{}, log), nil
	}

	publisher, err := NewKafkaPublisher(ProducerConfigFrom(cfg))
	if err != nil {
		return nil, err
	}
	log.Info("Kafka audit publisher ready", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.AuditTopic))
	return NewRecorder(publisher, log), nil
}

// Record publishes event, giving up after the publish timeout. The request
// context's cancellation is not inherited so an aborted client does not
// drop the event.
func (r *Recorder) Record(ctx context.Context, event *Event) {
	if r == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	if err := r.publisher.Publish(ctx, event); err != nil {
		r.log.Warn("failed to publish audit event",
			zap.String("event_type", string(event.Type)),
			zap.String("event_id", event.ID.String()),
			zap.Error(err),
		)
	}
}

// Close releases the underlying publisher
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.publisher.Close()
}
