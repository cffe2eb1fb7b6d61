package webhook

import (
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
)

// EventStatusChanged is the event type carried in the X-Event-Type header
// and the payload's type field.
const EventStatusChanged = "validation.status_changed"

// EventPayload is the JSON body of a delivery. Field names are part of the
// receiver contract.
type EventPayload struct {
	Type         string `json:"type"`
	EntityType   string `json:"entity_type"`
	EntityID     string `json:"entity_id"`
	RunID        string `json:"run_id"`
	Previous     string `json:"previous_status,omitempty"`
	Current      string `json:"current_status"`
	WarningCount int    `json:"warning_count"`
	ErrorCount   int    `json:"error_count"`
	OccurredAt   string `json:"occurred_at"`
}

func toPayload(ev validation.StatusChanged) EventPayload {
	return EventPayload{
		Type:         EventStatusChanged,
		EntityType:   ev.EntityType.String(),
		EntityID:     ev.EntityID,
		RunID:        ev.RunID,
		Previous:     ev.Previous.String(),
		Current:      ev.Current.String(),
		WarningCount: ev.WarningCount,
		ErrorCount:   ev.ErrorCount,
		OccurredAt:   ev.OccurredAt.UTC().Format(time.RFC3339),
	}
}
