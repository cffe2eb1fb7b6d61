// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/manufacturing"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/organization"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// OrganizationResponse represents a single organization in HTTP responses.
type OrganizationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	State     string `json:"state"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// OrganizationListResponse represents a list of organizations in HTTP responses.
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Count         int                    `json:"count"`
}

// ToOrganizationResponse converts a domain Organization to an HTTP response DTO.
func ToOrganizationResponse(o *organization.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Phone:     o.Phone,
		City:      o.City,
		State:     o.State,
		Notes:     o.Notes,
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
}

// ToOrganizationListResponse converts organizations to an HTTP list response DTO.
func ToOrganizationListResponse(orgs []organization.Organization) OrganizationListResponse {
	items := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		items[i] = ToOrganizationResponse(&orgs[i])
	}
	return OrganizationListResponse{Organizations: items, Count: len(items)}
}

// ContactResponse represents a single contact in HTTP responses.
type ContactResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// ContactListResponse represents a list of contacts in HTTP responses.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Count    int               `json:"count"`
}

// ToContactResponse converts a domain Contact to an HTTP response DTO.
func ToContactResponse(c *organization.Contact) ContactResponse {
	return ContactResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Role:           c.Role,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

// ToContactListResponse converts contacts to an HTTP list response DTO.
func ToContactListResponse(contacts []organization.Contact) ContactListResponse {
	items := make([]ContactResponse, len(contacts))
	for i := range contacts {
		items[i] = ToContactResponse(&contacts[i])
	}
	return ContactListResponse{Contacts: items, Count: len(items)}
}

// OrderResponse represents a single order in HTTP responses. Total and
// LineItems are only present on detail responses, where the line items have
// been loaded.
type OrderResponse struct {
	ID             string             `json:"id"`
	OrderNumber    string             `json:"order_number"`
	OrganizationID string             `json:"organization_id"`
	ContactID      string             `json:"contact_id"`
	Status         string             `json:"status"`
	Priority       string             `json:"priority"`
	OrderDate      string             `json:"order_date"`
	DueDate        *string            `json:"due_date"`
	Notes          string             `json:"notes"`
	Total          *decimal.Decimal   `json:"total,omitempty"`
	LineItems      []LineItemResponse `json:"line_items,omitempty"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

// OrderListResponse represents a list of orders in HTTP responses.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Count  int             `json:"count"`
}

// ToOrderResponse converts a domain Order to an HTTP response DTO without
// line items or total, as used by lists and create.
func ToOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		OrganizationID: o.OrganizationID,
		ContactID:      o.ContactID,
		Status:         o.Status.String(),
		Priority:       o.Priority.String(),
		OrderDate:      formatTime(o.OrderDate),
		DueDate:        formatOptional(o.DueDate),
		Notes:          o.Notes,
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
}

// ToOrderDetailResponse converts an Order whose line items have been loaded,
// adding the items and their total.
func ToOrderDetailResponse(o *order.Order) OrderResponse {
	resp := ToOrderResponse(o)
	total := o.Total()
	resp.Total = &total
	resp.LineItems = make([]LineItemResponse, len(o.LineItems))
	for i := range o.LineItems {
		resp.LineItems[i] = ToLineItemResponse(&o.LineItems[i])
	}
	return resp
}

// ToOrderListResponse converts orders to an HTTP list response DTO.
func ToOrderListResponse(orders []order.Order) OrderListResponse {
	items := make([]OrderResponse, len(orders))
	for i := range orders {
		items[i] = ToOrderResponse(&orders[i])
	}
	return OrderListResponse{Orders: items, Count: len(items)}
}

// LineItemResponse represents a single line item in HTTP responses.
type LineItemResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Sizes       map[string]int  `json:"sizes,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// ToLineItemResponse converts a domain LineItem to an HTTP response DTO.
func ToLineItemResponse(li *order.LineItem) LineItemResponse {
	resp := LineItemResponse{
		ID:          li.ID,
		OrderID:     li.OrderID,
		Description: li.Description,
		Color:       li.Color,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
		Subtotal:    li.Subtotal(),
		CreatedAt:   formatTime(li.CreatedAt),
		UpdatedAt:   formatTime(li.UpdatedAt),
	}

	if len(li.Sizes) > 0 {
		resp.Sizes = make(map[string]int, len(li.Sizes))
		for size, qty := range li.Sizes {
			resp.Sizes[string(size)] = qty
		}
	}

	return resp
}

// ManufacturingResponse represents an order's manufacturing record.
type ManufacturingResponse struct {
	ID                  string  `json:"id"`
	OrderID             string  `json:"order_id"`
	Status              string  `json:"status"`
	ProductionStart     *string `json:"production_start"`
	EstimatedCompletion *string `json:"estimated_completion"`
	Notes               string  `json:"notes"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

// ToManufacturingResponse converts a domain Record to an HTTP response DTO.
func ToManufacturingResponse(r *manufacturing.Record) ManufacturingResponse {
	return ManufacturingResponse{
		ID:                  r.ID,
		OrderID:             r.OrderID,
		Status:              r.Status.String(),
		ProductionStart:     formatOptional(r.ProductionStart),
		EstimatedCompletion: formatOptional(r.EstimatedCompletion),
		Notes:               r.Notes,
		CreatedAt:           formatTime(r.CreatedAt),
		UpdatedAt:           formatTime(r.UpdatedAt),
	}
}

// DesignJobResponse represents a single design job in HTTP responses.
type DesignJobResponse struct {
	ID               string  `json:"id"`
	JobNumber        string  `json:"job_number"`
	OrderID          string  `json:"order_id"`
	Brief            string  `json:"brief"`
	Status           string  `json:"status"`
	AssignedDesigner string  `json:"assigned_designer"`
	Deadline         *string `json:"deadline"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// DesignJobListResponse represents a list of design jobs in HTTP responses.
type DesignJobListResponse struct {
	DesignJobs []DesignJobResponse `json:"design_jobs"`
	Count      int                 `json:"count"`
}

// ToDesignJobResponse converts a domain DesignJob to an HTTP response DTO.
func ToDesignJobResponse(j *designjob.DesignJob) DesignJobResponse {
	return DesignJobResponse{
		ID:               j.ID,
		JobNumber:        j.JobNumber,
		OrderID:          j.OrderID,
		Brief:            j.Brief,
		Status:           j.Status.String(),
		AssignedDesigner: j.AssignedDesigner,
		Deadline:         formatOptional(j.Deadline),
		CreatedAt:        formatTime(j.CreatedAt),
		UpdatedAt:        formatTime(j.UpdatedAt),
	}
}

// ToDesignJobListResponse converts design jobs to an HTTP list response DTO.
func ToDesignJobListResponse(jobs []designjob.DesignJob) DesignJobListResponse {
	items := make([]DesignJobResponse, len(jobs))
	for i := range jobs {
		items[i] = ToDesignJobResponse(&jobs[i])
	}
	return DesignJobListResponse{DesignJobs: items, Count: len(items)}
}

// ValidationSummaryResponse is the aggregate of an entity's latest run.
type ValidationSummaryResponse struct {
	EntityType   string `json:"entity_type"`
	EntityID     string `json:"entity_id"`
	RunID        string `json:"run_id"`
	Status       string `json:"status"`
	PassCount    int    `json:"pass_count"`
	WarningCount int    `json:"warning_count"`
	ErrorCount   int    `json:"error_count"`
	SkippedCount int    `json:"skipped_count"`
	TotalChecks  int    `json:"total_checks"`
	LastRunAt    string `json:"last_run_at"`
	ExpiresAt    string `json:"expires_at"`
}

// ValidationSummaryListResponse represents the validation dashboard listing.
type ValidationSummaryListResponse struct {
	Summaries []ValidationSummaryResponse `json:"summaries"`
	Count     int                         `json:"count"`
}

// ValidationResultResponse is one check outcome.
type ValidationResultResponse struct {
	Check   string `json:"check"`
	Field   string `json:"field"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ValidationReportResponse is a summary with its per-check results.
type ValidationReportResponse struct {
	Summary ValidationSummaryResponse  `json:"summary"`
	Results []ValidationResultResponse `json:"results"`
}

// ToValidationSummaryResponse converts a domain Summary to an HTTP response DTO.
func ToValidationSummaryResponse(s *validation.Summary) ValidationSummaryResponse {
	return ValidationSummaryResponse{
		EntityType:   s.EntityType.String(),
		EntityID:     s.EntityID,
		RunID:        s.RunID,
		Status:       s.Status.String(),
		PassCount:    s.PassCount,
		WarningCount: s.WarningCount,
		ErrorCount:   s.ErrorCount,
		SkippedCount: s.SkippedCount,
		TotalChecks:  s.Total(),
		LastRunAt:    formatTime(s.LastRunAt),
		ExpiresAt:    formatTime(s.ExpiresAt),
	}
}

// ToValidationSummaryListResponse converts summaries to an HTTP list response DTO.
func ToValidationSummaryListResponse(summaries []validation.Summary) ValidationSummaryListResponse {
	items := make([]ValidationSummaryResponse, len(summaries))
	for i := range summaries {
		items[i] = ToValidationSummaryResponse(&summaries[i])
	}
	return ValidationSummaryListResponse{Summaries: items, Count: len(items)}
}

// ToValidationReportResponse converts a domain Report to an HTTP response DTO.
func ToValidationReportResponse(r *validation.Report) ValidationReportResponse {
	results := make([]ValidationResultResponse, len(r.Results))
	for i, res := range r.Results {
		results[i] = ValidationResultResponse{
			Check:   res.Check,
			Field:   res.Field,
			Status:  res.Status.String(),
			Message: res.Message,
		}
	}
	return ValidationReportResponse{
		Summary: ToValidationSummaryResponse(&r.Summary),
		Results: results,
	}
}

// BulkValidateResponse represents the result of a bulk validation.
// It includes both successful runs and per-item errors.
type BulkValidateResponse struct {
	Reports   []ValidationReportResponse `json:"reports"`
	Errors    []BulkValidateErrorItem    `json:"errors"`
	Total     int                        `json:"total"`
	Succeeded int                        `json:"succeeded"`
	Failed    int                        `json:"failed"`
}

// BulkValidateErrorItem represents a single failed validation within a bulk run.
type BulkValidateErrorItem struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Message    string `json:"message"`
}

// ToBulkValidateResponse converts a ports.BulkValidateResult to an HTTP response DTO.
func ToBulkValidateResponse(result *ports.BulkValidateResult) BulkValidateResponse {
	reports := make([]ValidationReportResponse, len(result.Reports))
	for i := range result.Reports {
		reports[i] = ToValidationReportResponse(&result.Reports[i])
	}

	errs := make([]BulkValidateErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkValidateErrorItem{
			EntityType: e.Ref.Type.String(),
			EntityID:   e.Ref.ID,
			Message:    e.Err.Error(),
		}
	}

	return BulkValidateResponse{
		Reports:   reports,
		Errors:    errs,
		Total:     len(result.Reports) + len(result.Errors),
		Succeeded: len(result.Reports),
		Failed:    len(result.Errors),
	}
}

// PurgeResponse reports how many expired result rows were deleted.
type PurgeResponse struct {
	Removed int64 `json:"removed"`
}

// HealthResponse is the body of the liveness and readiness endpoints.
// Checks maps component name to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
