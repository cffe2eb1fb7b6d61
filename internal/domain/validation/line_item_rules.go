package validation

import (
	"strings"
	"time"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain/order"
)

// LineItemSubject is a line item and, when loaded, its parent order.
type LineItemSubject struct {
	Item  order.LineItem
	Order *order.Order
}

// LineItemChecks returns the line item catalog in evaluation order.
func LineItemChecks() []Check[LineItemSubject] {
	return []Check[LineItemSubject]{
		{Name: "line_item.quantity_positive", Field: "quantity", Fn: lineItemQuantityPositive},
		{Name: "line_item.unit_price_set", Field: "unit_price", Fn: lineItemUnitPriceSet},
		{Name: "line_item.size_breakdown_matches", Field: "sizes", Fn: lineItemSizesMatch},
		{Name: "line_item.description_present", Field: "description", Fn: lineItemDescriptionPresent},
		{Name: "line_item.order_open", Field: "order_id", Fn: lineItemOrderOpen},
	}
}

func lineItemQuantityPositive(s LineItemSubject, _ time.Time) Outcome {
	if s.Item.Quantity <= 0 {
		return Fail("quantity must be positive, got %d", s.Item.Quantity)
	}
	return Pass("quantity is positive")
}

func lineItemUnitPriceSet(s LineItemSubject, _ time.Time) Outcome {
	if !s.Item.UnitPrice.IsPositive() {
		return Warn("unit price is not set")
	}
	return Pass("unit price set")
}

func lineItemSizesMatch(s LineItemSubject, _ time.Time) Outcome {
	if len(s.Item.Sizes) == 0 {
		return Skip("no size breakdown")
	}
	if sum := s.Item.Sizes.Total(); sum != s.Item.Quantity {
		return Fail("size breakdown totals %d but quantity is %d", sum, s.Item.Quantity)
	}
	return Pass("size breakdown matches quantity")
}

func lineItemDescriptionPresent(s LineItemSubject, _ time.Time) Outcome {
	if strings.TrimSpace(s.Item.Description) == "" {
		return Warn("line item has no description")
	}
	return Pass("description present")
}

func lineItemOrderOpen(s LineItemSubject, _ time.Time) Outcome {
	if s.Order == nil {
		return Skip("parent order not loaded")
	}
	if s.Order.Status == order.StatusCancelled {
		return Warn("line item belongs to cancelled order %s", s.Order.OrderNumber)
	}
	return Pass("parent order is open")
}
