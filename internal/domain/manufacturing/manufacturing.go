// Package manufacturing tracks the production run behind an order.
package manufacturing

import (
	"fmt"
	"strings"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
)

// Status represents the production state of an order.
type Status string

const (
	StatusPending      Status = "pending"
	StatusInProduction Status = "in_production"
	StatusQualityCheck Status = "quality_check"
	StatusCompleted    Status = "completed"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProduction, StatusQualityCheck, StatusCompleted:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Record is the single manufacturing record for an order.
type Record struct {
	ID                  string
	OrderID             string
	Status              Status
	ProductionStart     *time.Time
	EstimatedCompletion *time.Time
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Validate checks business rules for the Record entity.
func (r *Record) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.OrderID) == "" {
		fields["order_id"] = domain.MsgRequired
	}
	if !r.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	if r.ProductionStart != nil && r.EstimatedCompletion != nil &&
		r.EstimatedCompletion.Before(*r.ProductionStart) {
		fields["estimated_completion"] = "must not be before production_start"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
