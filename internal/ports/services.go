package ports

import (
	"context"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/manufacturing"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/organization"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
)

// OrganizationService defines the service port for customer accounts.
type OrganizationService interface {
	ListOrganizations(ctx context.Context) ([]organization.Organization, error)

	// GetOrganization returns domain.ErrNotFound if the organization does not exist.
	GetOrganization(ctx context.Context, id string) (*organization.Organization, error)

	// CreateOrganization returns domain.ErrValidation if the organization fails validation.
	CreateOrganization(ctx context.Context, org *organization.Organization) (*organization.Organization, error)

	// UpdateOrganization applies patch to the stored organization.
	UpdateOrganization(ctx context.Context, id string, patch organization.Patch) (*organization.Organization, error)

	// ListContacts returns domain.ErrNotFound if the organization does not exist.
	ListContacts(ctx context.Context, organizationID string) ([]organization.Contact, error)

	// AddContact returns domain.ErrNotFound if the organization does not exist.
	AddContact(ctx context.Context, organizationID string, contact *organization.Contact) (*organization.Contact, error)
}

// OrderService defines the service port for the order aggregate: the order,
// its line items and its manufacturing record. Every successful write
// triggers an advisory revalidation of the order that never fails the write.
type OrderService interface {
	ListOrders(ctx context.Context, filter order.Filter) ([]order.Order, error)

	// GetOrder returns the order with its line items populated.
	// Returns domain.ErrNotFound if the order does not exist.
	GetOrder(ctx context.Context, id string) (*order.Order, error)

	// CreateOrder returns domain.ErrValidation on hard input errors and
	// domain.ErrConflict if the order number is taken.
	CreateOrder(ctx context.Context, o *order.Order) (*order.Order, error)

	// UpdateOrder applies patch to the stored order.
	UpdateOrder(ctx context.Context, id string, patch order.Patch) (*order.Order, error)

	// DeleteOrder removes the order together with everything that hangs off it.
	DeleteOrder(ctx context.Context, id string) error

	// AddLineItem returns domain.ErrNotFound if the order does not exist.
	AddLineItem(ctx context.Context, orderID string, item *order.LineItem) (*order.LineItem, error)

	// UpdateLineItem returns domain.ErrNotFound if the order or item does not
	// exist, or if the item belongs to another order.
	UpdateLineItem(ctx context.Context, orderID, itemID string, patch order.LineItemPatch) (*order.LineItem, error)

	// RemoveLineItem returns domain.ErrNotFound if the order or item does not exist.
	RemoveLineItem(ctx context.Context, orderID, itemID string) error

	// GetManufacturing returns domain.ErrNotFound if the order has no record.
	GetManufacturing(ctx context.Context, orderID string) (*manufacturing.Record, error)

	// UpsertManufacturing creates or replaces the order's manufacturing record.
	UpsertManufacturing(ctx context.Context, orderID string, rec *manufacturing.Record) (*manufacturing.Record, error)
}

// DesignJobService defines the service port for design jobs.
type DesignJobService interface {
	ListDesignJobs(ctx context.Context, filter designjob.Filter) ([]designjob.DesignJob, error)

	// GetDesignJob returns domain.ErrNotFound if the job does not exist.
	GetDesignJob(ctx context.Context, id string) (*designjob.DesignJob, error)

	// CreateDesignJob returns domain.ErrValidation if OrderID names a missing order.
	CreateDesignJob(ctx context.Context, job *designjob.DesignJob) (*designjob.DesignJob, error)

	// UpdateDesignJob applies patch to the stored job.
	UpdateDesignJob(ctx context.Context, id string, patch designjob.Patch) (*designjob.DesignJob, error)
}

// ValidationService defines the service port for the advisory validation
// engine. Running a check catalog never modifies the entity under test.
type ValidationService interface {
	// Validate dispatches on ref.Type and runs the matching catalog.
	// Returns domain.ErrValidation for an unknown entity type and
	// domain.ErrNotFound if the entity does not exist.
	Validate(ctx context.Context, ref validation.EntityRef) (*validation.Report, error)

	// ValidateOrder runs the order catalog, then the line item catalog for
	// each of the order's items, and returns the order's report.
	ValidateOrder(ctx context.Context, orderID string) (*validation.Report, error)

	ValidateLineItem(ctx context.Context, itemID string) (*validation.Report, error)

	ValidateDesignJob(ctx context.Context, jobID string) (*validation.Report, error)

	// GetReport returns the latest stored report. When the stored run has
	// expired it is re-run if refresh-on-read is enabled; otherwise
	// domain.ErrNotFound is returned.
	GetReport(ctx context.Context, ref validation.EntityRef) (*validation.Report, error)

	ListSummaries(ctx context.Context, filter validation.SummaryFilter) ([]validation.Summary, error)

	// BulkValidate runs Validate for every ref concurrently with partial
	// success semantics. Returns a hard error only for request-level
	// failures such as an empty or oversized batch.
	BulkValidate(ctx context.Context, refs []validation.EntityRef) (*BulkValidateResult, error)

	// PurgeExpired deletes every expired run and returns the number of
	// result rows removed.
	PurgeExpired(ctx context.Context) (int64, error)
}

// BulkValidateError records a single failed validation within a bulk run.
type BulkValidateError struct {
	Ref validation.EntityRef
	Err error
}

// BulkValidateResult holds the outcomes of a bulk validation.
// Reports contains successful runs; Errors contains per-entity failures.
type BulkValidateResult struct {
	Reports []validation.Report
	Errors  []BulkValidateError
}
