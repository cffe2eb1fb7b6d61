package validation

import "time"

// StatusChanged is emitted when a run moves an entity to a different
// aggregate status. Previous is empty on the first run.
type StatusChanged struct {
	EntityType   EntityType
	EntityID     string
	RunID        string
	Previous     Status
	Current      Status
	WarningCount int
	ErrorCount   int
	OccurredAt   time.Time
}

// DetectStatusChange compares a fresh run against the previous summary, if
// any. A first run only counts as a change when it does not pass.
func DetectStatusChange(previous *Summary, current *Summary) (StatusChanged, bool) {
	ev := StatusChanged{
		EntityType:   current.EntityType,
		EntityID:     current.EntityID,
		RunID:        current.RunID,
		Current:      current.Status,
		WarningCount: current.WarningCount,
		ErrorCount:   current.ErrorCount,
		OccurredAt:   current.LastRunAt,
	}
	if previous == nil {
		return ev, current.Status != StatusPass
	}
	ev.Previous = previous.Status
	return ev, previous.Status != current.Status
}
