package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/manufacturing"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/validation"
)

const orderColumns = `id, order_number, organization_id, contact_id, status, priority,
	order_date, due_date, notes, created_at, updated_at`

const lineItemColumns = `id, order_id, description, color, quantity, unit_price, sizes, created_at, updated_at`

const manufacturingColumns = `id, order_id, status, production_start, estimated_completion, notes, created_at, updated_at`

// ListOrders returns orders matching filter, newest first.
func (s *Store) ListOrders(ctx context.Context, filter order.Filter) ([]order.Order, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.OrganizationID != "" {
		where = append(where, "organization_id = ?")
		args = append(args, filter.OrganizationID)
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	out := []order.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return out, nil
}

// GetOrder returns one order without its line items.
func (s *Store) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`SELECT `+orderColumns+` FROM orders WHERE id = ?`), id)
	o, err := scanOrder(row)
	if err != nil {
		return nil, mapError(err, "order "+id)
	}
	return o, nil
}

// CreateOrder inserts o with a fresh ID and timestamps. Line items on o are
// ignored; they are added separately.
func (s *Store) CreateOrder(ctx context.Context, o *order.Order) (*order.Order, error) {
	now := s.now()
	id := newID()

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO orders (`+orderColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		id, o.OrderNumber, o.OrganizationID, o.ContactID, string(o.Status), string(o.Priority),
		toMillis(o.OrderDate), nullMillis(o.DueDate), o.Notes, toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "creating order "+o.OrderNumber)
	}
	return s.GetOrder(ctx, id)
}

// UpdateOrder overwrites the mutable fields of o.
func (s *Store) UpdateOrder(ctx context.Context, o *order.Order) (*order.Order, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE orders
		SET order_number = ?, organization_id = ?, contact_id = ?, status = ?, priority = ?,
			order_date = ?, due_date = ?, notes = ?, updated_at = ?
		WHERE id = ?`),
		o.OrderNumber, o.OrganizationID, o.ContactID, string(o.Status), string(o.Priority),
		toMillis(o.OrderDate), nullMillis(o.DueDate), o.Notes, toMillis(s.now()), o.ID,
	)
	if err != nil {
		return nil, mapError(err, "updating order "+o.ID)
	}
	if err := requireAffected(res, "order "+o.ID); err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, o.ID)
}

// DeleteOrder removes the order, its line items and manufacturing record,
// and the validation rows of the order and its items. Design jobs linked to
// the order are unlinked rather than deleted.
func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	return s.execTx(ctx, func(q querier) error {
		stmts := []struct {
			query string
			args  []any
		}{
			{`DELETE FROM validation_results WHERE entity_type = ? AND entity_id IN
				(SELECT id FROM line_items WHERE order_id = ?)`, []any{string(validation.EntityLineItem), id}},
			{`DELETE FROM validation_summaries WHERE entity_type = ? AND entity_id IN
				(SELECT id FROM line_items WHERE order_id = ?)`, []any{string(validation.EntityLineItem), id}},
			{`DELETE FROM validation_results WHERE entity_type = ? AND entity_id = ?`, []any{string(validation.EntityOrder), id}},
			{`DELETE FROM validation_summaries WHERE entity_type = ? AND entity_id = ?`, []any{string(validation.EntityOrder), id}},
			{`DELETE FROM line_items WHERE order_id = ?`, []any{id}},
			{`DELETE FROM manufacturing WHERE order_id = ?`, []any{id}},
			{`UPDATE design_jobs SET order_id = '' WHERE order_id = ?`, []any{id}},
		}
		for _, st := range stmts {
			if _, err := q.ExecContext(ctx, s.rebind(st.query), st.args...); err != nil {
				return fmt.Errorf("deleting order %s: %w", id, err)
			}
		}

		res, err := q.ExecContext(ctx, s.rebind(`DELETE FROM orders WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("deleting order %s: %w", id, err)
		}
		return requireAffected(res, "order "+id)
	})
}

// ListLineItems returns the items of one order in creation order.
func (s *Store) ListLineItems(ctx context.Context, orderID string) ([]order.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT `+lineItemColumns+` FROM line_items
		WHERE order_id = ?
		ORDER BY id`), orderID)
	if err != nil {
		return nil, fmt.Errorf("listing line items: %w", err)
	}
	defer rows.Close()

	out := []order.LineItem{}
	for rows.Next() {
		li, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning line item: %w", err)
		}
		out = append(out, *li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing line items: %w", err)
	}
	return out, nil
}

// GetLineItem returns one line item by ID.
func (s *Store) GetLineItem(ctx context.Context, id string) (*order.LineItem, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`SELECT `+lineItemColumns+` FROM line_items WHERE id = ?`), id)
	li, err := scanLineItem(row)
	if err != nil {
		return nil, mapError(err, "line item "+id)
	}
	return li, nil
}

// CreateLineItem inserts item with a fresh ID and timestamps.
func (s *Store) CreateLineItem(ctx context.Context, item *order.LineItem) (*order.LineItem, error) {
	sizes, err := encodeSizes(item.Sizes)
	if err != nil {
		return nil, err
	}
	now := s.now()
	id := newID()

	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO line_items (`+lineItemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		id, item.OrderID, item.Description, item.Color, item.Quantity, item.UnitPrice.String(), sizes,
		toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, mapError(err, "creating line item")
	}
	return s.GetLineItem(ctx, id)
}

// UpdateLineItem overwrites the mutable fields of item.
func (s *Store) UpdateLineItem(ctx context.Context, item *order.LineItem) (*order.LineItem, error) {
	sizes, err := encodeSizes(item.Sizes)
	if err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE line_items
		SET description = ?, color = ?, quantity = ?, unit_price = ?, sizes = ?, updated_at = ?
		WHERE id = ?`),
		item.Description, item.Color, item.Quantity, item.UnitPrice.String(), sizes, toMillis(s.now()), item.ID,
	)
	if err != nil {
		return nil, mapError(err, "updating line item "+item.ID)
	}
	if err := requireAffected(res, "line item "+item.ID); err != nil {
		return nil, err
	}
	return s.GetLineItem(ctx, item.ID)
}

// DeleteLineItem removes the item and its validation rows.
func (s *Store) DeleteLineItem(ctx context.Context, id string) error {
	return s.execTx(ctx, func(q querier) error {
		kind := string(validation.EntityLineItem)
		if _, err := q.ExecContext(ctx, s.rebind(
			`DELETE FROM validation_results WHERE entity_type = ? AND entity_id = ?`), kind, id); err != nil {
			return fmt.Errorf("deleting line item %s: %w", id, err)
		}
		if _, err := q.ExecContext(ctx, s.rebind(
			`DELETE FROM validation_summaries WHERE entity_type = ? AND entity_id = ?`), kind, id); err != nil {
			return fmt.Errorf("deleting line item %s: %w", id, err)
		}

		res, err := q.ExecContext(ctx, s.rebind(`DELETE FROM line_items WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("deleting line item %s: %w", id, err)
		}
		return requireAffected(res, "line item "+id)
	})
}

// GetManufacturing returns the manufacturing record of an order.
func (s *Store) GetManufacturing(ctx context.Context, orderID string) (*manufacturing.Record, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT `+manufacturingColumns+` FROM manufacturing WHERE order_id = ?`), orderID)
	rec, err := scanManufacturing(row)
	if err != nil {
		return nil, mapError(err, "manufacturing record for order "+orderID)
	}
	return rec, nil
}

// UpsertManufacturing creates the order's record or replaces its mutable
// fields. The record ID and CreatedAt survive replacement.
func (s *Store) UpsertManufacturing(ctx context.Context, rec *manufacturing.Record) (*manufacturing.Record, error) {
	now := toMillis(s.now())

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO manufacturing (`+manufacturingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (order_id) DO UPDATE SET
			status = excluded.status,
			production_start = excluded.production_start,
			estimated_completion = excluded.estimated_completion,
			notes = excluded.notes,
			updated_at = excluded.updated_at`),
		newID(), rec.OrderID, string(rec.Status), nullMillis(rec.ProductionStart),
		nullMillis(rec.EstimatedCompletion), rec.Notes, now, now,
	)
	if err != nil {
		return nil, mapError(err, "saving manufacturing record for order "+rec.OrderID)
	}
	return s.GetManufacturing(ctx, rec.OrderID)
}

func scanOrder(sc rowScanner) (*order.Order, error) {
	var (
		o                           order.Order
		status, priority            string
		orderDate, created, updated int64
		due                         sql.NullInt64
	)
	if err := sc.Scan(&o.ID, &o.OrderNumber, &o.OrganizationID, &o.ContactID, &status, &priority,
		&orderDate, &due, &o.Notes, &created, &updated); err != nil {
		return nil, err
	}
	o.Status = order.Status(status)
	o.Priority = order.Priority(priority)
	o.OrderDate = fromMillis(orderDate)
	o.DueDate = timePtr(due)
	o.CreatedAt = fromMillis(created)
	o.UpdatedAt = fromMillis(updated)
	return &o, nil
}

func scanLineItem(sc rowScanner) (*order.LineItem, error) {
	var (
		li               order.LineItem
		price, sizes     string
		created, updated int64
	)
	if err := sc.Scan(&li.ID, &li.OrderID, &li.Description, &li.Color, &li.Quantity, &price, &sizes,
		&created, &updated); err != nil {
		return nil, err
	}

	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("line item %s unit price %q: %w", li.ID, price, err)
	}
	li.UnitPrice = p

	if li.Sizes, err = decodeSizes(sizes); err != nil {
		return nil, fmt.Errorf("line item %s sizes: %w", li.ID, err)
	}

	li.CreatedAt = fromMillis(created)
	li.UpdatedAt = fromMillis(updated)
	return &li, nil
}

func scanManufacturing(sc rowScanner) (*manufacturing.Record, error) {
	var (
		rec              manufacturing.Record
		status           string
		start, eta       sql.NullInt64
		created, updated int64
	)
	if err := sc.Scan(&rec.ID, &rec.OrderID, &status, &start, &eta, &rec.Notes, &created, &updated); err != nil {
		return nil, err
	}
	rec.Status = manufacturing.Status(status)
	rec.ProductionStart = timePtr(start)
	rec.EstimatedCompletion = timePtr(eta)
	rec.CreatedAt = fromMillis(created)
	rec.UpdatedAt = fromMillis(updated)
	return &rec, nil
}

// encodeSizes stores an absent breakdown as the empty string so that "no
// breakdown" and "empty breakdown" read back the same.
func encodeSizes(sizes order.SizeBreakdown) (string, error) {
	if len(sizes) == 0 {
		return "", nil
	}
	b, err := json.Marshal(sizes)
	if err != nil {
		return "", fmt.Errorf("encoding sizes: %w", err)
	}
	return string(b), nil
}

func decodeSizes(s string) (order.SizeBreakdown, error) {
	if s == "" {
		return nil, nil
	}
	var sizes order.SizeBreakdown
	if err := json.Unmarshal([]byte(s), &sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}
