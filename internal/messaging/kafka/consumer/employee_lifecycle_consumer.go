package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"employee-service/internal/bootstrap"
	"employee-service/internal/events"
	"employee-service/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeEmployeeLifecycle writes an audit entry for every lifecycle event
// until ctx is cancelled. Messages that cannot be decoded are committed so
// they do not block the partition.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		event, err := decodeLifecycleEvent(msg)
		if err != nil {
			log.Error("decode employee lifecycle event failed",
				zap.String("key", string(msg.Key)),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditCtx := contextutil.WithRequestID(ctx, event.RequestID)
		auditLogger.Log(auditCtx, AuditEntry(event))

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("employee lifecycle event audited",
			zap.String("event_type", event.EventType),
			zap.Int64("employee_id", event.EmployeeID),
		)
	}
}

func decodeLifecycleEvent(msg kafkago.Message) (events.EmployeeLifecycleEvent, error) {
	var event events.EmployeeLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, err
	}

	switch event.EventType {
	case events.EmployeeCreated, events.EmployeeUpdated, events.EmployeeDeleted:
	default:
		return event, fmt.Errorf("unknown event type %q", event.EventType)
	}

	if event.RequestID == "" {
		for _, h := range msg.Headers {
			if h.Key == "request_id" {
				event.RequestID = string(h.Value)
			}
		}
	}
	return event, nil
}

func AuditEntry(event events.EmployeeLifecycleEvent) bootstrap.AuditLog {
	verb := strings.TrimPrefix(event.EventType, "employee_")
	return bootstrap.AuditLog{
		Action:  strings.ToUpper(event.EventType),
		Message: fmt.Sprintf("employee %d %s", event.EmployeeID, verb),
		Meta: map[string]any{
			"employee_id": event.EmployeeID,
			"occurred_at": event.OccurredAt,
		},
	}
}
