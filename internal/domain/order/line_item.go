package order

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/suttonsam862/WholesaleOS4.0-sub009/internal/domain"
)

// Size is a garment size label.
type Size string

const (
	SizeYS   Size = "ys"
	SizeYM   Size = "ym"
	SizeYL   Size = "yl"
	SizeXS   Size = "xs"
	SizeS    Size = "s"
	SizeM    Size = "m"
	SizeL    Size = "l"
	SizeXL   Size = "xl"
	Size2XL  Size = "2xl"
	Size3XL  Size = "3xl"
	Size4XL  Size = "4xl"
	SizeOSFA Size = "osfa"
)

var sizeOrder = []Size{
	SizeYS, SizeYM, SizeYL, SizeXS, SizeS, SizeM, SizeL, SizeXL, Size2XL, Size3XL, Size4XL, SizeOSFA,
}

// IsValid returns true if the size is one of the defined constants.
func (s Size) IsValid() bool {
	for _, known := range sizeOrder {
		if s == known {
			return true
		}
	}
	return false
}

// SizeBreakdown maps sizes to piece counts.
type SizeBreakdown map[Size]int

// Total returns the sum of all piece counts.
func (b SizeBreakdown) Total() int {
	n := 0
	for _, qty := range b {
		n += qty
	}
	return n
}

// Sizes returns the sizes present in the breakdown in garment order.
func (b SizeBreakdown) Sizes() []Size {
	out := make([]Size, 0, len(b))
	for s := range b {
		out = append(out, s)
	}
	rank := func(s Size) int {
		for i, known := range sizeOrder {
			if known == s {
				return i
			}
		}
		return len(sizeOrder)
	}
	sort.Slice(out, func(i, j int) bool { return rank(out[i]) < rank(out[j]) })
	return out
}

// LineItem is one product line on an order, optionally broken down by size.
type LineItem struct {
	ID          string
	OrderID     string
	Description string
	Color       string
	Quantity    int
	UnitPrice   decimal.Decimal
	Sizes       SizeBreakdown
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the LineItem entity. A zero quantity or
// price is accepted here and reported by the advisory checks instead.
func (li *LineItem) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(li.OrderID) == "" {
		fields["order_id"] = domain.MsgRequired
	}
	if li.Quantity < 0 {
		fields["quantity"] = fmt.Sprintf("must not be negative, got %d", li.Quantity)
	}
	if li.UnitPrice.IsNegative() {
		fields["unit_price"] = fmt.Sprintf("must not be negative, got %s", li.UnitPrice)
	}
	for size, qty := range li.Sizes {
		if !size.IsValid() {
			fields["sizes."+string(size)] = "unknown size"
			continue
		}
		if qty < 0 {
			fields["sizes."+string(size)] = fmt.Sprintf("must not be negative, got %d", qty)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Subtotal returns quantity * unit price.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
