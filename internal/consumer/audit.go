package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"example.com/extracurricular/internal/events"
)

// AuditHandler writes a line to the audit log for every roster change.
type AuditHandler struct {
	logger *log.Logger
}

// NewAuditHandler constructs an AuditHandler writing to the default logger.
func NewAuditHandler() *AuditHandler {
	return &AuditHandler{logger: log.New(log.Writer(), "[roster-audit] ", log.LstdFlags)}
}

// Handle implements Handler.
func (h *AuditHandler) Handle(ctx context.Context, msg Message) error {
	var event events.RosterChanged
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("decode roster event: %w", err)
	}

	switch event.EventType {
	case events.TypeSignup:
		h.logger.Printf("signup activity=%q email=%s event_id=%s occurred_at=%s",
			event.Activity, event.Email, event.EventID, event.OccurredAt.Format(time.RFC3339))
	case events.TypeUnregister:
		h.logger.Printf("unregister activity=%q email=%s event_id=%s occurred_at=%s",
			event.Activity, event.Email, event.EventID, event.OccurredAt.Format(time.RFC3339))
	default:
		return fmt.Errorf("unknown roster event type %q", event.EventType)
	}
	return nil
}
