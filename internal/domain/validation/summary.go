package validation

import (
	"time"

	"github.com/google/uuid"
)

// Result is a persisted check outcome from one run.
type Result struct {
	ID         string
	RunID      string
	EntityType EntityType
	EntityID   string
	Check      string
	Field      string
	Status     Status
	Message    string
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// Summary aggregates the most recent run for an entity.
type Summary struct {
	EntityType   EntityType
	EntityID     string
	RunID        string
	Status       Status
	PassCount    int
	WarningCount int
	ErrorCount   int
	SkippedCount int
	LastRunAt    time.Time
	ExpiresAt    time.Time
}

// Ref returns the entity the summary describes.
func (s *Summary) Ref() EntityRef {
	return EntityRef{Type: s.EntityType, ID: s.EntityID}
}

// Total returns the number of checks evaluated in the run.
func (s *Summary) Total() int {
	return s.PassCount + s.WarningCount + s.ErrorCount + s.SkippedCount
}

// Expired reports whether the summary's time box has closed at now.
func (s *Summary) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Report is a summary together with its per-check results.
type Report struct {
	Summary Summary
	Results []Result
}

// SummaryFilter holds optional criteria for listing summaries.
type SummaryFilter struct {
	EntityType     EntityType
	Status         Status
	IncludeExpired bool
}

// Summarize counts outcomes by status. The aggregate status is the worst
// severity present; a run with no outcomes, or only skipped ones, passes.
func Summarize(entityType EntityType, entityID string, outcomes []Outcome) Summary {
	s := Summary{
		EntityType: entityType,
		EntityID:   entityID,
		Status:     StatusPass,
	}
	for _, o := range outcomes {
		switch o.Status {
		case StatusPass:
			s.PassCount++
		case StatusWarning:
			s.WarningCount++
		case StatusError:
			s.ErrorCount++
		case StatusSkipped:
			s.SkippedCount++
		}
		s.Status = Worst(s.Status, o.Status)
	}
	return s
}

// NewRun stamps outcomes into a Report: one run ID shared by every row,
// fresh result IDs, and the same [now, now+ttl) time box throughout.
func NewRun(entityType EntityType, entityID string, outcomes []Outcome, now time.Time, ttl time.Duration) *Report {
	now = now.UTC()
	expires := now.Add(ttl)
	runID := newID()

	summary := Summarize(entityType, entityID, outcomes)
	summary.RunID = runID
	summary.LastRunAt = now
	summary.ExpiresAt = expires

	results := make([]Result, len(outcomes))
	for i, o := range outcomes {
		results[i] = Result{
			ID:         newID(),
			RunID:      runID,
			EntityType: entityType,
			EntityID:   entityID,
			Check:      o.Check,
			Field:      o.Field,
			Status:     o.Status,
			Message:    o.Message,
			CreatedAt:  now,
			ExpiresAt:  expires,
		}
	}

	return &Report{Summary: summary, Results: results}
}

// newID returns a time-ordered UUID, falling back to a random one if the
// clock sequence cannot be read.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
