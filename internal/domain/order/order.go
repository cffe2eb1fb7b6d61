// Package order defines sales orders and their line items.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
)

// Order is a customer order for decorated apparel or merchandise.
type Order struct {
	ID             string
	OrderNumber    string
	OrganizationID string
	ContactID      string
	Status         Status
	Priority       Priority
	OrderDate      time.Time
	DueDate        *time.Time
	Notes          string
	LineItems      []LineItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks business rules for the Order entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass. Missing organization or due date are advisory
// findings, not validation errors.
func (o *Order) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(o.OrderNumber) == "" {
		fields["order_number"] = domain.MsgRequired
	}
	if !o.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", o.Status)
	}
	if !o.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", o.Priority)
	}
	if o.OrderDate.IsZero() {
		fields["order_date"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Total returns the sum of quantity * unit price across loaded line items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.LineItems {
		total = total.Add(o.LineItems[i].Subtotal())
	}
	return total
}

// Filter holds optional filter criteria for listing orders.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Status         Status
	OrganizationID string
}
