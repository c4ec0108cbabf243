// Package checkout computes order totals from the active site settings.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/nammaelampillai-official/namma-elampillai/internal/content"
)

// Quote is the priced breakdown for a cart subtotal.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeQuote applies the shipping rules to a subtotal. Shipping is free
// when a positive threshold is configured and the subtotal meets it,
// otherwise the flat charge applies. A zero threshold means shipping is
// never free.
func ComputeQuote(subtotal decimal.Decimal, settings content.CheckoutSettings) Quote {
	shipping := settings.ShippingCharge
	if settings.FreeShippingThreshold.IsPositive() &&
		subtotal.GreaterThanOrEqual(settings.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}

// Subtotal sums quantity times unit price over the cart lines.
func Subtotal(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum
}

// Line is a priced cart entry.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}
