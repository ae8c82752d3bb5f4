package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"leave-approval/internal/events"
	"leave-approval/internal/messaging/kafka"
	"leave-approval/internal/shared/contextutil"

	"github.com/google/uuid"
)

const aggregateType = "leave_request"

const (
	eventSubmitted = events.LeaveSubmitted
	eventApproved  = events.LeaveApproved
	eventRejected  = events.LeaveRejected
	eventUpdated   = events.LeaveUpdated
	eventDeleted   = events.LeaveDeleted
)

// enqueueLifecycleEvent stages a lifecycle event in the outbox inside tx.
// It is a no-op when the service runs without an outbox.
func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *sql.Tx, l *LeaveRequest, eventType, reason string) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.LeaveLifecycleEvent{
		EventType:  eventType,
		LeaveID:    l.ID,
		EmployeeID: l.EmployeeID,
		ManagerID:  l.ManagerID,
		LeaveType:  string(l.LeaveType),
		Status:     string(l.LeaveStatus),
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: aggregateType,
		AggregateID:   strconv.FormatInt(l.ID, 10),
		EventType:     eventType,
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}
