package order

// Status represents where an order sits in the sales-to-delivery pipeline.
type Status string

const (
	StatusNew          Status = "new"
	StatusWaitingSizes Status = "waiting_sizes"
	StatusInvoiced     Status = "invoiced"
	StatusProduction   Status = "production"
	StatusShipped      Status = "shipped"
	StatusCompleted    Status = "completed"
	StatusCancelled    Status = "cancelled"
)

// pipelineRank orders the non-cancelled statuses. Cancelled is terminal and
// sits outside the pipeline.
var pipelineRank = map[Status]int{
	StatusNew:          0,
	StatusWaitingSizes: 1,
	StatusInvoiced:     2,
	StatusProduction:   3,
	StatusShipped:      4,
	StatusCompleted:    5,
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	if s == StatusCancelled {
		return true
	}
	_, ok := pipelineRank[s]
	return ok
}

// IsClosed reports whether the order no longer needs attention.
func (s Status) IsClosed() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// AtLeast reports whether s has reached other in the pipeline. Cancelled
// orders never reach any stage.
func (s Status) AtLeast(other Status) bool {
	rs, ok := pipelineRank[s]
	if !ok {
		return false
	}
	ro, ok := pipelineRank[other]
	if !ok {
		return false
	}
	return rs >= ro
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Priority is the scheduling priority of an order.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}
