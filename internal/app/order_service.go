package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/designjob"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/manufacturing"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

// Compile-time check that OrderService implements ports.OrderService.
var _ ports.OrderService = (*OrderService)(nil)

// OrderService implements ports.OrderService. Every successful write is
// followed by an advisory revalidation of the order. Updates and deletes also
// revalidate the design jobs linked to the order, since their deadline and
// linkage checks read it.
type OrderService struct {
	orders    ports.OrderRepository
	orgs      ports.OrganizationRepository
	jobs      ports.DesignJobRepository
	validator ports.ValidationService
	logger    *slog.Logger
}

// NewOrderService creates a new OrderService. validator may be nil, in which
// case writes are not revalidated.
func NewOrderService(
	orders ports.OrderRepository,
	orgs ports.OrganizationRepository,
	jobs ports.DesignJobRepository,
	validator ports.ValidationService,
	logger *slog.Logger,
) *OrderService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &OrderService{orders: orders, orgs: orgs, jobs: jobs, validator: validator, logger: logger}
}

// ListOrders returns orders matching filter, newest first.
func (s *OrderService) ListOrders(ctx context.Context, filter order.Filter) ([]order.Order, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domain.NewFieldError("status", fmt.Sprintf("invalid: %q", filter.Status))
	}

	orders, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list orders",
			slog.String("operation", "ListOrders"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return orders, nil
}

// GetOrder returns the order with its line items loaded.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	o, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.orders.ListLineItems(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list line items",
			slog.String("operation", "GetOrder"),
			slog.String("order_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading line items: %w", err)
	}
	o.LineItems = items
	return o, nil
}

// CreateOrder validates and stores a new order, then revalidates it.
func (s *OrderService) CreateOrder(ctx context.Context, o *order.Order) (*order.Order, error) {
	s.logger.InfoContext(ctx, "creating order", slog.String("order_number", o.OrderNumber))

	if o.Status == "" {
		o.Status = order.StatusNew
	}
	if o.Priority == "" {
		o.Priority = order.PriorityNormal
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, o); err != nil {
		return nil, err
	}

	created, err := s.orders.CreateOrder(ctx, o)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create order",
			slog.String("operation", "CreateOrder"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating order: %w", err)
	}

	revalidate(ctx, s.logger, s.validator, orderRef(created.ID))
	return created, nil
}

// UpdateOrder applies patch to the stored order, then revalidates it.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, patch order.Patch) (*order.Order, error) {
	s.logger.InfoContext(ctx, "updating order", slog.String("order_id", id))

	o, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(o)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, o); err != nil {
		return nil, err
	}

	updated, err := s.orders.UpdateOrder(ctx, o)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update order",
			slog.String("operation", "UpdateOrder"),
			slog.String("order_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating order: %w", err)
	}
	forgetOrder(ctx, id)

	items, err := s.orders.ListLineItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading line items: %w", err)
	}
	updated.LineItems = items

	refs := append([]validation.EntityRef{orderRef(id)}, s.linkedJobRefs(ctx, id)...)
	revalidate(ctx, s.logger, s.validator, refs...)
	return updated, nil
}

// DeleteOrder removes an order and everything that hangs off it. Linked
// design jobs are collected before the store unlinks them, then revalidated.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting order", slog.String("order_id", id))

	linked := s.linkedJobRefs(ctx, id)
	if err := s.orders.DeleteOrder(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to delete order",
				slog.String("operation", "DeleteOrder"),
				slog.String("order_id", id),
				slog.Any("error", err),
			)
		}
		return err
	}
	forgetOrder(ctx, id)

	revalidate(ctx, s.logger, s.validator, linked...)
	return nil
}

// linkedJobRefs lists the design jobs linked to orderID. A listing failure is
// logged and only costs the advisory refresh.
func (s *OrderService) linkedJobRefs(ctx context.Context, orderID string) []validation.EntityRef {
	if s.validator == nil || s.jobs == nil {
		return nil
	}

	jobs, err := s.jobs.ListDesignJobs(ctx, designjob.Filter{OrderID: orderID})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to list linked design jobs",
			slog.String("operation", "linkedJobRefs"),
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
		return nil
	}

	refs := make([]validation.EntityRef, 0, len(jobs))
	for _, job := range jobs {
		refs = append(refs, designJobRef(job.ID))
	}
	return refs
}

// AddLineItem attaches a new line item to an existing order.
func (s *OrderService) AddLineItem(ctx context.Context, orderID string, item *order.LineItem) (*order.LineItem, error) {
	s.logger.InfoContext(ctx, "adding line item", slog.String("order_id", orderID))

	if _, err := s.orders.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	item.OrderID = orderID
	if err := item.Validate(); err != nil {
		return nil, err
	}

	created, err := s.orders.CreateLineItem(ctx, item)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create line item",
			slog.String("operation", "AddLineItem"),
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("adding line item: %w", err)
	}

	revalidate(ctx, s.logger, s.validator, orderRef(orderID))
	return created, nil
}

// UpdateLineItem applies patch to a line item of the given order.
func (s *OrderService) UpdateLineItem(ctx context.Context, orderID, itemID string, patch order.LineItemPatch) (*order.LineItem, error) {
	s.logger.InfoContext(ctx, "updating line item",
		slog.String("order_id", orderID),
		slog.String("line_item_id", itemID),
	)

	item, err := s.lineItemOf(ctx, orderID, itemID)
	if err != nil {
		return nil, err
	}

	patch.Apply(item)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.orders.UpdateLineItem(ctx, item)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update line item",
			slog.String("operation", "UpdateLineItem"),
			slog.String("line_item_id", itemID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("updating line item: %w", err)
	}

	revalidate(ctx, s.logger, s.validator, orderRef(orderID))
	return updated, nil
}

// RemoveLineItem deletes a line item of the given order.
func (s *OrderService) RemoveLineItem(ctx context.Context, orderID, itemID string) error {
	s.logger.InfoContext(ctx, "removing line item",
		slog.String("order_id", orderID),
		slog.String("line_item_id", itemID),
	)

	if _, err := s.lineItemOf(ctx, orderID, itemID); err != nil {
		return err
	}

	if err := s.orders.DeleteLineItem(ctx, itemID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete line item",
			slog.String("operation", "RemoveLineItem"),
			slog.String("line_item_id", itemID),
			slog.Any("error", err),
		)
		return fmt.Errorf("removing line item: %w", err)
	}

	revalidate(ctx, s.logger, s.validator, orderRef(orderID))
	return nil
}

// GetManufacturing returns the manufacturing record of an order.
func (s *OrderService) GetManufacturing(ctx context.Context, orderID string) (*manufacturing.Record, error) {
	if _, err := s.orders.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}
	return s.orders.GetManufacturing(ctx, orderID)
}

// UpsertManufacturing creates or replaces the order's manufacturing record.
func (s *OrderService) UpsertManufacturing(ctx context.Context, orderID string, rec *manufacturing.Record) (*manufacturing.Record, error) {
	s.logger.InfoContext(ctx, "upserting manufacturing record", slog.String("order_id", orderID))

	if _, err := s.orders.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	rec.OrderID = orderID
	if rec.Status == "" {
		rec.Status = manufacturing.StatusPending
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.orders.UpsertManufacturing(ctx, rec)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to upsert manufacturing record",
			slog.String("operation", "UpsertManufacturing"),
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("saving manufacturing record: %w", err)
	}

	revalidate(ctx, s.logger, s.validator, orderRef(orderID))
	return saved, nil
}

// lineItemOf loads a line item and confirms it belongs to orderID.
func (s *OrderService) lineItemOf(ctx context.Context, orderID, itemID string) (*order.LineItem, error) {
	if _, err := s.orders.GetOrder(ctx, orderID); err != nil {
		return nil, err
	}

	item, err := s.orders.GetLineItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OrderID != orderID {
		return nil, fmt.Errorf("line item %s on order %s: %w", itemID, orderID, domain.ErrNotFound)
	}
	return item, nil
}

// checkReferences rejects organization and contact IDs that do not resolve.
// Leaving them empty is allowed and reported by the advisory checks.
func (s *OrderService) checkReferences(ctx context.Context, o *order.Order) error {
	fields := make(map[string]string)

	if o.OrganizationID != "" {
		if _, err := s.orgs.GetOrganization(ctx, o.OrganizationID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("checking organization: %w", err)
			}
			fields["organization_id"] = "unknown organization"
		}
	}

	if o.ContactID != "" {
		c, err := s.orgs.GetContact(ctx, o.ContactID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			fields["contact_id"] = "unknown contact"
		case err != nil:
			return fmt.Errorf("checking contact: %w", err)
		case o.OrganizationID != "" && c.OrganizationID != o.OrganizationID:
			fields["contact_id"] = "belongs to another organization"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
