package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"triply/internal/audit"
	"triply/internal/shared/config"
	"triply/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// audit-consumer tails the audit topic and writes each event to the log.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, !cfg.IsProduction())
	defer func() { _ = log.Sync() }()

	consumer, err := audit.NewConsumer(cfg.Kafka, audit.NewLogSink(log), log)
	if err != nil {
		log.Fatal("failed to start audit consumer", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("audit consumer started",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.AuditTopic),
		zap.String("group", cfg.Kafka.ConsumerGroup),
	)

	if err := consumer.Run(ctx); err != nil {
		log.Error("audit consumer stopped", zap.Error(err))
	}
	if err := consumer.Close(); err != nil {
		log.Error("failed to close consumer group", zap.Error(err))
	}
	log.Info("audit consumer exited")
}
