package designjob

import "time"

// Patch is a partial update to a DesignJob. Nil fields are left unchanged.
type Patch struct {
	JobNumber        *string
	OrderID          *string
	Brief            *string
	Status           *Status
	AssignedDesigner *string
	Deadline         *time.Time
	ClearDeadline    bool
}

// Apply copies the set fields onto j. ClearDeadline wins over Deadline.
func (p *Patch) Apply(j *DesignJob) {
	if p.JobNumber != nil {
		j.JobNumber = *p.JobNumber
	}
	if p.OrderID != nil {
		j.OrderID = *p.OrderID
	}
	if p.Brief != nil {
		j.Brief = *p.Brief
	}
	if p.Status != nil {
		j.Status = *p.Status
	}
	if p.AssignedDesigner != nil {
		j.AssignedDesigner = *p.AssignedDesigner
	}
	if p.Deadline != nil {
		d := *p.Deadline
		j.Deadline = &d
	}
	if p.ClearDeadline {
		j.Deadline = nil
	}
}
