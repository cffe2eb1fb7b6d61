package ports

import (
	"context"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/manufacturing"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/organization"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
)

// OrganizationRepository persists organizations and their contacts.
// Create methods assign the ID and timestamps and return the stored entity.
type OrganizationRepository interface {
	ListOrganizations(ctx context.Context) ([]organization.Organization, error)

	// GetOrganization returns domain.ErrNotFound if the organization does not exist.
	GetOrganization(ctx context.Context, id string) (*organization.Organization, error)

	CreateOrganization(ctx context.Context, org *organization.Organization) (*organization.Organization, error)

	// UpdateOrganization returns domain.ErrNotFound if the organization does not exist.
	UpdateOrganization(ctx context.Context, org *organization.Organization) (*organization.Organization, error)

	// ListContacts returns contacts of one organization ordered by name.
	ListContacts(ctx context.Context, organizationID string) ([]organization.Contact, error)

	// GetContact returns domain.ErrNotFound if the contact does not exist.
	GetContact(ctx context.Context, id string) (*organization.Contact, error)

	CreateContact(ctx context.Context, contact *organization.Contact) (*organization.Contact, error)
}

// OrderRepository persists orders, their line items and the manufacturing
// record behind each order.
type OrderRepository interface {
	// ListOrders returns orders matching filter, newest first, without line items.
	ListOrders(ctx context.Context, filter order.Filter) ([]order.Order, error)

	// GetOrder returns the order without line items.
	// Returns domain.ErrNotFound if the order does not exist.
	GetOrder(ctx context.Context, id string) (*order.Order, error)

	// CreateOrder returns domain.ErrConflict if the order number is taken.
	CreateOrder(ctx context.Context, o *order.Order) (*order.Order, error)

	// UpdateOrder returns domain.ErrNotFound if the order does not exist and
	// domain.ErrConflict if the new order number is taken.
	UpdateOrder(ctx context.Context, o *order.Order) (*order.Order, error)

	// DeleteOrder removes the order, its line items, its manufacturing record
	// and every validation row for the order and its line items.
	// Returns domain.ErrNotFound if the order does not exist.
	DeleteOrder(ctx context.Context, id string) error

	// ListLineItems returns the line items of one order in creation order.
	ListLineItems(ctx context.Context, orderID string) ([]order.LineItem, error)

	// GetLineItem returns domain.ErrNotFound if the item does not exist.
	GetLineItem(ctx context.Context, id string) (*order.LineItem, error)

	CreateLineItem(ctx context.Context, item *order.LineItem) (*order.LineItem, error)

	// UpdateLineItem returns domain.ErrNotFound if the item does not exist.
	UpdateLineItem(ctx context.Context, item *order.LineItem) (*order.LineItem, error)

	// DeleteLineItem removes the item and its validation rows.
	// Returns domain.ErrNotFound if the item does not exist.
	DeleteLineItem(ctx context.Context, id string) error

	// GetManufacturing returns domain.ErrNotFound if the order has no record.
	GetManufacturing(ctx context.Context, orderID string) (*manufacturing.Record, error)

	// UpsertManufacturing creates or replaces the single record for rec.OrderID.
	UpsertManufacturing(ctx context.Context, rec *manufacturing.Record) (*manufacturing.Record, error)
}

// DesignJobRepository persists design jobs.
type DesignJobRepository interface {
	ListDesignJobs(ctx context.Context, filter designjob.Filter) ([]designjob.DesignJob, error)

	// GetDesignJob returns domain.ErrNotFound if the job does not exist.
	GetDesignJob(ctx context.Context, id string) (*designjob.DesignJob, error)

	// CreateDesignJob returns domain.ErrConflict if the job number is taken.
	CreateDesignJob(ctx context.Context, job *designjob.DesignJob) (*designjob.DesignJob, error)

	// UpdateDesignJob returns domain.ErrNotFound if the job does not exist.
	UpdateDesignJob(ctx context.Context, job *designjob.DesignJob) (*designjob.DesignJob, error)
}

// ValidationRepository persists validation runs. Each entity has at most one
// summary; results belong to the run that produced them.
type ValidationRepository interface {
	// SaveRun atomically replaces the entity's results with report.Results
	// and upserts report.Summary. Readers never observe a mix of two runs.
	SaveRun(ctx context.Context, report *validation.Report) error

	// GetSummary returns domain.ErrNotFound if the entity was never validated.
	GetSummary(ctx context.Context, ref validation.EntityRef) (*validation.Summary, error)

	// GetReport returns the summary with its results ordered by check name.
	// Returns domain.ErrNotFound if the entity was never validated.
	GetReport(ctx context.Context, ref validation.EntityRef) (*validation.Report, error)

	// ListSummaries returns summaries matching filter, most recent run first.
	// Expired summaries are excluded unless filter.IncludeExpired is set.
	ListSummaries(ctx context.Context, filter validation.SummaryFilter, now time.Time) ([]validation.Summary, error)

	// PurgeExpired deletes results and summaries whose time box closed at or
	// before now and returns the number of result rows removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// ValidationNotifier publishes validation status changes to interested
// parties. Delivery is best effort; callers log and drop failures.
type ValidationNotifier interface {
	NotifyStatusChanged(ctx context.Context, event validation.StatusChanged) error
}
