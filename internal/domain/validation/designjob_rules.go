package validation

import (
	"strings"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
)

// DesignJobSubject is a design job and, when linked, its order.
type DesignJobSubject struct {
	Job   designjob.DesignJob
	Order *order.Order
}

// DesignJobChecks returns the design job catalog in evaluation order.
func DesignJobChecks() []Check[DesignJobSubject] {
	return []Check[DesignJobSubject]{
		{Name: "design_job.brief_present", Field: "brief", Fn: designBriefPresent},
		{Name: "design_job.designer_assigned", Field: "assigned_designer", Fn: designDesignerAssigned},
		{Name: "design_job.deadline_set", Field: "deadline", Fn: designDeadlineSet},
		{Name: "design_job.deadline_not_past", Field: "deadline", Fn: designDeadlineNotPast},
		{Name: "design_job.linked_to_order", Field: "order_id", Fn: designLinkedToOrder},
		{Name: "design_job.deadline_before_order_due", Field: "deadline", Fn: designDeadlineBeforeOrderDue},
	}
}

func designBriefPresent(s DesignJobSubject, _ time.Time) Outcome {
	if strings.TrimSpace(s.Job.Brief) == "" {
		return Warn("design job has no brief")
	}
	return Pass("brief present")
}

func designDesignerAssigned(s DesignJobSubject, _ time.Time) Outcome {
	if s.Job.Status == designjob.StatusPending {
		return Skip("job not started")
	}
	if strings.TrimSpace(s.Job.AssignedDesigner) == "" {
		return Warn("job is %s but no designer is assigned", s.Job.Status)
	}
	return Pass("designer assigned")
}

func designDeadlineSet(s DesignJobSubject, _ time.Time) Outcome {
	if s.Job.Deadline == nil {
		return Warn("design job has no deadline")
	}
	return Pass("deadline set")
}

func designDeadlineNotPast(s DesignJobSubject, now time.Time) Outcome {
	if s.Job.Deadline == nil {
		return Skip("no deadline")
	}
	if s.Job.Status.IsClosed() {
		return Skip("job is " + s.Job.Status.String())
	}
	if s.Job.Deadline.Before(now) {
		return Warn("design job is past its deadline %s", formatDate(*s.Job.Deadline))
	}
	return Pass("deadline is in the future")
}

func designLinkedToOrder(s DesignJobSubject, _ time.Time) Outcome {
	if strings.TrimSpace(s.Job.OrderID) == "" {
		return Warn("design job is not linked to an order")
	}
	return Pass("linked to order")
}

func designDeadlineBeforeOrderDue(s DesignJobSubject, _ time.Time) Outcome {
	if s.Job.Deadline == nil {
		return Skip("no deadline")
	}
	if s.Order == nil || s.Order.DueDate == nil {
		return Skip("no order due date")
	}
	if s.Job.Deadline.After(*s.Order.DueDate) {
		return Fail("design deadline %s is after order due date %s",
			formatDate(*s.Job.Deadline), formatDate(*s.Order.DueDate))
	}
	return Pass("design deadline precedes order due date")
}
