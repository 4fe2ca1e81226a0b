package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"employee-service/internal/bootstrap"
	"employee-service/internal/config"
	"employee-service/internal/events"
	"employee-service/internal/messaging/kafka/consumer"
	"employee-service/internal/shared/connection"

	"go.uber.org/zap"
)

func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := connection.NewKafkaReader(cfg.Kafka.Broker, events.EmployeeLifecycleTopic, cfg.Kafka.GroupID)
	defer reader.Close()

	auditLogger := bootstrap.NewZapAuditLogger(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		consumer.ConsumeEmployeeLifecycle(ctx, reader, auditLogger, logger)
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
