package validation

import "fmt"

// Status is the outcome of a single check, and also the aggregate status of
// a summary (where it is never StatusSkipped).
type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPass, StatusWarning, StatusError, StatusSkipped:
		return true
	default:
		return false
	}
}

// severity ranks statuses for aggregation. Skipped ranks below pass so that
// it never dominates.
func (s Status) severity() int {
	switch s {
	case StatusError:
		return 3
	case StatusWarning:
		return 2
	case StatusPass:
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Worst returns the more severe of a and b.
func Worst(a, b Status) Status {
	if b.severity() > a.severity() {
		return b
	}
	return a
}

// EntityType names the kinds of entity the engine validates.
type EntityType string

const (
	EntityOrder     EntityType = "order"
	EntityDesignJob EntityType = "design_job"
	EntityLineItem  EntityType = "line_item"
)

// IsValid returns true if the entity type is one of the defined constants.
func (e EntityType) IsValid() bool {
	switch e {
	case EntityOrder, EntityDesignJob, EntityLineItem:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (e EntityType) String() string {
	return string(e)
}

// EntityRef identifies one validated entity.
type EntityRef struct {
	Type EntityType
	ID   string
}

// String implements fmt.Stringer.
func (r EntityRef) String() string {
	return fmt.Sprintf("%s:%s", r.Type, r.ID)
}
