package validation

import (
	"strings"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/manufacturing"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
)

// MinOrderQuantity is the smallest total piece count the shop prints.
const MinOrderQuantity = 12

// OrderSubject is everything the order checks look at.
type OrderSubject struct {
	Order         order.Order
	LineItems     []order.LineItem
	DesignJobs    []designjob.DesignJob
	Manufacturing *manufacturing.Record
}

// OrderChecks returns the order catalog in evaluation order.
func OrderChecks() []Check[OrderSubject] {
	return []Check[OrderSubject]{
		{Name: "order.organization_assigned", Field: "organization_id", Fn: orderOrganizationAssigned},
		{Name: "order.contact_assigned", Field: "contact_id", Fn: orderContactAssigned},
		{Name: "order.has_line_items", Field: "line_items", Fn: orderHasLineItems},
		{Name: "order.due_date_set", Field: "due_date", Fn: orderDueDateSet},
		{Name: "order.due_date_after_order_date", Field: "due_date", Fn: orderDueAfterOrderDate},
		{Name: "order.due_date_not_past", Field: "due_date", Fn: orderDueNotPast},
		{Name: "order.designs_approved_for_production", Field: "status", Fn: orderDesignsApproved},
		{Name: "order.manufacturing_record_present", Field: "manufacturing", Fn: orderManufacturingPresent},
		{Name: "order.line_item_total_quantity", Field: "line_items", Fn: orderMinimumQuantity},
	}
}

func orderOrganizationAssigned(s OrderSubject, _ time.Time) Outcome {
	if strings.TrimSpace(s.Order.OrganizationID) == "" {
		return Fail("order has no organization")
	}
	return Pass("organization assigned")
}

func orderContactAssigned(s OrderSubject, _ time.Time) Outcome {
	if strings.TrimSpace(s.Order.ContactID) == "" {
		return Warn("order has no contact")
	}
	return Pass("contact assigned")
}

func orderHasLineItems(s OrderSubject, _ time.Time) Outcome {
	if len(s.LineItems) == 0 {
		return Fail("order has no line items")
	}
	return Pass("order has line items")
}

func orderDueDateSet(s OrderSubject, _ time.Time) Outcome {
	if s.Order.DueDate == nil {
		return Warn("order has no due date")
	}
	return Pass("due date set")
}

func orderDueAfterOrderDate(s OrderSubject, _ time.Time) Outcome {
	if s.Order.DueDate == nil {
		return Skip("no due date")
	}
	if s.Order.DueDate.Before(s.Order.OrderDate) {
		return Fail("due date %s is before order date %s",
			formatDate(*s.Order.DueDate), formatDate(s.Order.OrderDate))
	}
	return Pass("due date follows order date")
}

func orderDueNotPast(s OrderSubject, now time.Time) Outcome {
	if s.Order.DueDate == nil {
		return Skip("no due date")
	}
	if s.Order.Status.IsClosed() {
		return Skip("order is " + s.Order.Status.String())
	}
	if s.Order.DueDate.Before(now) {
		return Warn("order is past its due date %s", formatDate(*s.Order.DueDate))
	}
	return Pass("due date is in the future")
}

func orderDesignsApproved(s OrderSubject, _ time.Time) Outcome {
	if !s.Order.Status.AtLeast(order.StatusProduction) {
		return Skip("order not in production")
	}
	if len(s.DesignJobs) == 0 {
		return Skip("no design jobs linked")
	}
	var pending []string
	for _, j := range s.DesignJobs {
		if j.Status == designjob.StatusCancelled {
			continue
		}
		if !j.Status.IsSignedOff() {
			pending = append(pending, j.JobNumber)
		}
	}
	if len(pending) > 0 {
		return Fail("order is %s but design jobs are not approved: %s",
			s.Order.Status, strings.Join(pending, ", "))
	}
	return Pass("all design jobs approved")
}

func orderManufacturingPresent(s OrderSubject, _ time.Time) Outcome {
	switch s.Order.Status {
	case order.StatusProduction, order.StatusShipped:
	default:
		return Skip("order not in production")
	}
	if s.Manufacturing == nil {
		return Warn("order is %s but has no manufacturing record", s.Order.Status)
	}
	return Pass("manufacturing record present")
}

func orderMinimumQuantity(s OrderSubject, _ time.Time) Outcome {
	if len(s.LineItems) == 0 {
		return Skip("no line items")
	}
	total := 0
	for _, li := range s.LineItems {
		total += li.Quantity
	}
	if total < MinOrderQuantity {
		return Warn("order totals %d pieces, below the %d piece minimum", total, MinOrderQuantity)
	}
	return Pass("order meets minimum quantity")
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
