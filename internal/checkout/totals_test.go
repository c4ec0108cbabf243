package checkout

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nammaelampillai-official/namma-elampillai/internal/content"
)

func settings(threshold, charge int64) content.CheckoutSettings {
	return content.CheckoutSettings{
		FreeShippingThreshold: decimal.NewFromInt(threshold),
		ShippingCharge:        decimal.NewFromInt(charge),
	}
}

func TestComputeQuoteBelowThresholdChargesShipping(t *testing.T) {
	quote := ComputeQuote(decimal.NewFromInt(1999), settings(2000, 100))
	if !quote.Shipping.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected shipping 100, got %s", quote.Shipping)
	}
	if !quote.Total.Equal(decimal.NewFromInt(2099)) {
		t.Fatalf("expected total 2099, got %s", quote.Total)
	}
}

func TestComputeQuoteAtThresholdIsFree(t *testing.T) {
	quote := ComputeQuote(decimal.NewFromInt(2000), settings(2000, 100))
	if !quote.Shipping.IsZero() {
		t.Fatalf("expected free shipping at threshold, got %s", quote.Shipping)
	}
	if !quote.Total.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("expected total 2000, got %s", quote.Total)
	}
}

func TestComputeQuoteZeroThresholdNeverFree(t *testing.T) {
	quote := ComputeQuote(decimal.NewFromInt(1000000), settings(0, 100))
	if !quote.Shipping.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected shipping to always apply with zero threshold, got %s", quote.Shipping)
	}
}

func TestSubtotalSumsLines(t *testing.T) {
	lines := []Line{
		{UnitPrice: decimal.NewFromInt(750), Quantity: 2},
		{UnitPrice: decimal.NewFromFloat(499.50), Quantity: 1},
	}
	got := Subtotal(lines)
	if !got.Equal(decimal.NewFromFloat(1999.50)) {
		t.Fatalf("expected 1999.50, got %s", got)
	}
}

func TestSubtotalEmptyCartIsZero(t *testing.T) {
	if got := Subtotal(nil); !got.IsZero() {
		t.Fatalf("expected zero subtotal, got %s", got)
	}
}
