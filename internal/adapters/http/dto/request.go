package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/manufacturing"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
)

const (
	msgRequired     = domain.MsgRequired
	msgMustNotEmpty = domain.MsgMustNotEmpty
	msgBadDate      = "must be an RFC 3339 timestamp or YYYY-MM-DD date"
)

// ParseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date and
// returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// checkDate records a field error when a non-empty s does not parse.
func checkDate(fields map[string]string, field, s string) {
	if s == "" {
		return
	}
	if _, err := ParseDate(s); err != nil {
		fields[field] = msgBadDate
	}
}

// checkOptionalDate is checkDate for PATCH fields, where an empty string
// clears the date.
func checkOptionalDate(fields map[string]string, field string, s *string) {
	if s != nil {
		checkDate(fields, field, *s)
	}
}

func checkSizes(fields map[string]string, sizes map[string]int) {
	for size, qty := range sizes {
		switch {
		case !order.Size(size).IsValid():
			fields["sizes."+size] = "unknown size"
		case qty < 0:
			fields["sizes."+size] = fmt.Sprintf("must not be negative, got %d", qty)
		}
	}
}

func result(fields map[string]string) error {
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateOrganizationRequest represents the JSON body for creating an organization.
type CreateOrganizationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateOrganizationRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	return result(fields)
}

// UpdateOrganizationRequest represents the JSON body for updating an organization.
// All fields are optional; nil means "do not change this field.".
type UpdateOrganizationRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	City  *string `json:"city,omitempty"`
	State *string `json:"state,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateOrganizationRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}

	return result(fields)
}

// CreateContactRequest represents the JSON body for adding a contact to an
// organization.
type CreateContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreateContactRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}

	return result(fields)
}

// CreateOrderRequest represents the JSON body for creating an order. Dates
// accept RFC 3339 timestamps or YYYY-MM-DD.
type CreateOrderRequest struct {
	OrderNumber    string `json:"order_number"`
	OrganizationID string `json:"organization_id,omitempty"`
	ContactID      string `json:"contact_id,omitempty"`
	Status         string `json:"status,omitempty"`
	Priority       string `json:"priority,omitempty"`
	OrderDate      string `json:"order_date,omitempty"`
	DueDate        string `json:"due_date,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateOrderRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.OrderNumber) == "" {
		fields["order_number"] = msgRequired
	}
	if r.Status != "" && !order.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	if r.Priority != "" && !order.Priority(r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", r.Priority)
	}
	checkDate(fields, "order_date", r.OrderDate)
	checkDate(fields, "due_date", r.DueDate)

	return result(fields)
}

// UpdateOrderRequest represents the JSON body for updating an order.
// Nil fields are left unchanged; an empty due_date clears it.
type UpdateOrderRequest struct {
	OrderNumber    *string `json:"order_number,omitempty"`
	OrganizationID *string `json:"organization_id,omitempty"`
	ContactID      *string `json:"contact_id,omitempty"`
	Status         *string `json:"status,omitempty"`
	Priority       *string `json:"priority,omitempty"`
	OrderDate      *string `json:"order_date,omitempty"`
	DueDate        *string `json:"due_date,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateOrderRequest) Validate() error {
	fields := make(map[string]string)

	if r.OrderNumber != nil && strings.TrimSpace(*r.OrderNumber) == "" {
		fields["order_number"] = msgMustNotEmpty
	}
	if r.Status != nil && !order.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}
	if r.Priority != nil && !order.Priority(*r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *r.Priority)
	}
	if r.OrderDate != nil && *r.OrderDate == "" {
		fields["order_date"] = msgMustNotEmpty
	}
	checkOptionalDate(fields, "order_date", r.OrderDate)
	checkOptionalDate(fields, "due_date", r.DueDate)

	return result(fields)
}

// CreateLineItemRequest represents the JSON body for adding a line item.
// unit_price accepts a JSON number or a decimal string.
type CreateLineItemRequest struct {
	Description string          `json:"description,omitempty"`
	Color       string          `json:"color,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Sizes       map[string]int  `json:"sizes,omitempty"`
}

// Validate rejects negative amounts and unknown sizes. Zero quantity or
// price is accepted and reported by the advisory checks.
func (r *CreateLineItemRequest) Validate() error {
	fields := make(map[string]string)

	if r.Quantity < 0 {
		fields["quantity"] = fmt.Sprintf("must not be negative, got %d", r.Quantity)
	}
	if r.UnitPrice.IsNegative() {
		fields["unit_price"] = fmt.Sprintf("must not be negative, got %s", r.UnitPrice)
	}
	checkSizes(fields, r.Sizes)

	return result(fields)
}

// UpdateLineItemRequest represents the JSON body for updating a line item.
// A present sizes object replaces the whole breakdown; {} clears it.
type UpdateLineItemRequest struct {
	Description *string          `json:"description,omitempty"`
	Color       *string          `json:"color,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	Sizes       map[string]int   `json:"sizes,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateLineItemRequest) Validate() error {
	fields := make(map[string]string)

	if r.Quantity != nil && *r.Quantity < 0 {
		fields["quantity"] = fmt.Sprintf("must not be negative, got %d", *r.Quantity)
	}
	if r.UnitPrice != nil && r.UnitPrice.IsNegative() {
		fields["unit_price"] = fmt.Sprintf("must not be negative, got %s", r.UnitPrice)
	}
	checkSizes(fields, r.Sizes)

	return result(fields)
}

// UpsertManufacturingRequest represents the JSON body for creating or
// replacing an order's manufacturing record.
type UpsertManufacturingRequest struct {
	Status              string `json:"status,omitempty"`
	ProductionStart     string `json:"production_start,omitempty"`
	EstimatedCompletion string `json:"estimated_completion,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

// Validate checks that optional fields have valid values.
func (r *UpsertManufacturingRequest) Validate() error {
	fields := make(map[string]string)

	if r.Status != "" && !manufacturing.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	checkDate(fields, "production_start", r.ProductionStart)
	checkDate(fields, "estimated_completion", r.EstimatedCompletion)

	return result(fields)
}

// CreateDesignJobRequest represents the JSON body for creating a design job.
type CreateDesignJobRequest struct {
	JobNumber        string `json:"job_number"`
	OrderID          string `json:"order_id,omitempty"`
	Brief            string `json:"brief,omitempty"`
	Status           string `json:"status,omitempty"`
	AssignedDesigner string `json:"assigned_designer,omitempty"`
	Deadline         string `json:"deadline,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values.
func (r *CreateDesignJobRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.JobNumber) == "" {
		fields["job_number"] = msgRequired
	}
	if r.Status != "" && !designjob.Status(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}
	checkDate(fields, "deadline", r.Deadline)

	return result(fields)
}

// UpdateDesignJobRequest represents the JSON body for updating a design job.
// Nil fields are left unchanged; an empty deadline clears it and an empty
// order_id unlinks the job.
type UpdateDesignJobRequest struct {
	JobNumber        *string `json:"job_number,omitempty"`
	OrderID          *string `json:"order_id,omitempty"`
	Brief            *string `json:"brief,omitempty"`
	Status           *string `json:"status,omitempty"`
	AssignedDesigner *string `json:"assigned_designer,omitempty"`
	Deadline         *string `json:"deadline,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateDesignJobRequest) Validate() error {
	fields := make(map[string]string)

	if r.JobNumber != nil && strings.TrimSpace(*r.JobNumber) == "" {
		fields["job_number"] = msgMustNotEmpty
	}
	if r.Status != nil && !designjob.Status(*r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", *r.Status)
	}
	checkOptionalDate(fields, "deadline", r.Deadline)

	return result(fields)
}

// EntityRefRequest names one entity in a bulk validation request.
type EntityRefRequest struct {
	EntityType string `json:"entity_type"`
	ID         string `json:"id"`
}

// BulkValidateRequest represents the JSON body for POST /validation/bulk.
// Unknown entity types are reported per item in the response rather than
// rejecting the batch.
type BulkValidateRequest struct {
	Items []EntityRefRequest `json:"items"`
}

// Validate checks that the batch is not empty.
func (r *BulkValidateRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Items) == 0 {
		fields["items"] = msgMustNotEmpty
	}

	return result(fields)
}
