package handlers

import (
	"net/http"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/adapters/http/dto"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/manufacturing"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/ports"
)

// OrderHandler handles HTTP requests for orders, their line items and their
// manufacturing record.
type OrderHandler struct {
	svc ports.OrderService
}

// NewOrderHandler creates a new OrderHandler with the given service port.
func NewOrderHandler(svc ports.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// ListOrders handles GET /api/v1/orders with optional status and
// organization_id filters.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status, err := queryEnum(r, "status", order.Status.IsValid)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	filter := order.Filter{
		Status:         status,
		OrganizationID: r.URL.Query().Get("organization_id"),
	}

	orders, err := h.svc.ListOrders(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrderListResponse(orders))
}

// CreateOrder handles POST /api/v1/orders.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateOrder(r.Context(), mapCreateOrderRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToOrderResponse(created))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	o, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrderDetailResponse(o))
}

// UpdateOrder handles PATCH /api/v1/orders/{id}.
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateOrder(r.Context(), id, mapUpdateOrderRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrderDetailResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddLineItem handles POST /api/v1/orders/{id}/line-items.
func (h *OrderHandler) AddLineItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateLineItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item := &order.LineItem{
		Description: req.Description,
		Color:       req.Color,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Sizes:       toSizeBreakdown(req.Sizes),
	}

	created, err := h.svc.AddLineItem(r.Context(), id, item)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToLineItemResponse(created))
}

// UpdateLineItem handles PATCH /api/v1/orders/{id}/line-items/{lineItemId}.
func (h *OrderHandler) UpdateLineItem(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r, "id", "lineItemId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateLineItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := order.LineItemPatch{
		Description: req.Description,
		Color:       req.Color,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	}
	if req.Sizes != nil {
		patch.Sizes = toSizeBreakdown(req.Sizes)
		if patch.Sizes == nil {
			patch.Sizes = order.SizeBreakdown{}
		}
	}

	updated, err := h.svc.UpdateLineItem(r.Context(), ids[0], ids[1], patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLineItemResponse(updated))
}

// RemoveLineItem handles DELETE /api/v1/orders/{id}/line-items/{lineItemId}.
func (h *OrderHandler) RemoveLineItem(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDs(r, "id", "lineItemId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.RemoveLineItem(r.Context(), ids[0], ids[1]); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetManufacturing handles GET /api/v1/orders/{id}/manufacturing.
func (h *OrderHandler) GetManufacturing(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	rec, err := h.svc.GetManufacturing(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToManufacturingResponse(rec))
}

// UpsertManufacturing handles PUT /api/v1/orders/{id}/manufacturing.
func (h *OrderHandler) UpsertManufacturing(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpsertManufacturingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rec := &manufacturing.Record{
		Status:              manufacturing.Status(req.Status),
		ProductionStart:     optionalDate(req.ProductionStart),
		EstimatedCompletion: optionalDate(req.EstimatedCompletion),
		Notes:               req.Notes,
	}

	saved, err := h.svc.UpsertManufacturing(r.Context(), id, rec)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToManufacturingResponse(saved))
}

// mapCreateOrderRequest converts a CreateOrderRequest DTO to a domain Order.
// Empty status, priority and order date are defaulted by the service.
func mapCreateOrderRequest(req *dto.CreateOrderRequest) *order.Order {
	return &order.Order{
		OrderNumber:    req.OrderNumber,
		OrganizationID: req.OrganizationID,
		ContactID:      req.ContactID,
		Status:         order.Status(req.Status),
		Priority:       order.Priority(req.Priority),
		OrderDate:      date(req.OrderDate),
		DueDate:        optionalDate(req.DueDate),
		Notes:          req.Notes,
	}
}

// mapUpdateOrderRequest converts an UpdateOrderRequest DTO to a domain Patch.
func mapUpdateOrderRequest(req *dto.UpdateOrderRequest) order.Patch {
	patch := order.Patch{
		OrderNumber:    req.OrderNumber,
		OrganizationID: req.OrganizationID,
		ContactID:      req.ContactID,
		Notes:          req.Notes,
	}
	if req.Status != nil {
		s := order.Status(*req.Status)
		patch.Status = &s
	}
	if req.Priority != nil {
		p := order.Priority(*req.Priority)
		patch.Priority = &p
	}
	if req.OrderDate != nil {
		d := date(*req.OrderDate)
		patch.OrderDate = &d
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			patch.ClearDueDate = true
		} else {
			patch.DueDate = optionalDate(*req.DueDate)
		}
	}
	return patch
}

// toSizeBreakdown converts request sizes, dropping zero counts. An empty
// result is nil.
func toSizeBreakdown(sizes map[string]int) order.SizeBreakdown {
	var out order.SizeBreakdown
	for size, qty := range sizes {
		if qty == 0 {
			continue
		}
		if out == nil {
			out = make(order.SizeBreakdown, len(sizes))
		}
		out[order.Size(size)] = qty
	}
	return out
}
