package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"employee-service/internal/config"
	"employee-service/internal/messaging/kafka"
	"employee-service/internal/messaging/kafka/producer"
	"employee-service/internal/shared/connection"

	"go.uber.org/zap"
)

func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg, log)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter := connection.NewKafkaWriter(cfg.Kafka.Broker)
	defer kafkaWriter.Close()

	relay := producer.NewRelay(
		kafka.NewOutboxRepository(gormDB),
		kafkaWriter,
		logger,
		cfg.Outbox.PollInterval,
		cfg.Outbox.BatchSize,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		relay.Run(ctx)
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("worker shutting down")
	cancel()
	<-done

	return nil
}
