// Package designjob defines artwork jobs handled by the design team.
package designjob

import (
	"fmt"
	"strings"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
)

// Status represents the progress of a design job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusApproved   Status = "approved"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusReview,
		StatusApproved, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsSignedOff reports whether the artwork is cleared for production.
func (s Status) IsSignedOff() bool {
	return s == StatusApproved || s == StatusCompleted
}

// IsClosed reports whether the job no longer has a live deadline.
func (s Status) IsClosed() bool {
	return s.IsSignedOff() || s == StatusCancelled
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// DesignJob is a request for artwork, usually tied to an order.
type DesignJob struct {
	ID               string
	JobNumber        string
	OrderID          string
	Brief            string
	Status           Status
	AssignedDesigner string
	Deadline         *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks business rules for the DesignJob entity.
func (j *DesignJob) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(j.JobNumber) == "" {
		fields["job_number"] = domain.MsgRequired
	}
	if !j.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", j.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Filter holds optional filter criteria for listing design jobs.
type Filter struct {
	Status  Status
	OrderID string
}
