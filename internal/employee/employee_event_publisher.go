package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"employee-service/internal/events"
	"employee-service/internal/messaging/kafka"
	"employee-service/internal/shared/contextutil"

	"github.com/google/uuid"
)

const aggregateType = "employee"

// recordEvent queues a lifecycle event on tx. It does nothing when the
// service was built without an outbox.
func (s *service) recordEvent(ctx context.Context, tx *sql.Tx, eventType string, employeeID int64) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  rid,
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: aggregateType,
		AggregateID:   strconv.FormatInt(employeeID, 10),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
