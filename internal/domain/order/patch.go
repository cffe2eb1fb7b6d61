package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patch is a partial update to an Order. Nil fields are left unchanged.
type Patch struct {
	OrderNumber    *string
	OrganizationID *string
	ContactID      *string
	Status         *Status
	Priority       *Priority
	OrderDate      *time.Time
	DueDate        *time.Time
	ClearDueDate   bool
	Notes          *string
}

// Apply copies the set fields onto o. ClearDueDate wins over DueDate.
func (p *Patch) Apply(o *Order) {
	if p.OrderNumber != nil {
		o.OrderNumber = *p.OrderNumber
	}
	if p.OrganizationID != nil {
		o.OrganizationID = *p.OrganizationID
	}
	if p.ContactID != nil {
		o.ContactID = *p.ContactID
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Priority != nil {
		o.Priority = *p.Priority
	}
	if p.OrderDate != nil {
		o.OrderDate = *p.OrderDate
	}
	if p.DueDate != nil {
		d := *p.DueDate
		o.DueDate = &d
	}
	if p.ClearDueDate {
		o.DueDate = nil
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
}

// LineItemPatch is a partial update to a LineItem. A non-nil Sizes replaces
// the whole breakdown; an empty map clears it.
type LineItemPatch struct {
	Description *string
	Color       *string
	Quantity    *int
	UnitPrice   *decimal.Decimal
	Sizes       SizeBreakdown
}

// Apply copies the set fields onto li.
func (p *LineItemPatch) Apply(li *LineItem) {
	if p.Description != nil {
		li.Description = *p.Description
	}
	if p.Color != nil {
		li.Color = *p.Color
	}
	if p.Quantity != nil {
		li.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		li.UnitPrice = *p.UnitPrice
	}
	if p.Sizes != nil {
		sizes := make(SizeBreakdown, len(p.Sizes))
		for s, n := range p.Sizes {
			sizes[s] = n
		}
		if len(sizes) == 0 {
			sizes = nil
		}
		li.Sizes = sizes
	}
}
