package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nammaelampillai-official/namma-elampillai/internal/content"
)

type emptyContentRepo struct{}

func (emptyContentRepo) Latest(context.Context) (*content.Document, error) { return nil, nil }

func (emptyContentRepo) Save(context.Context, *content.Document) error { return nil }

func newQuoteHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	svc := content.NewService(emptyContentRepo{}, testLogger())
	return CheckoutQuote(svc, testLogger())
}

func TestCheckoutQuoteChargesBelowThreshold(t *testing.T) {
	rec := postJSON(t, newQuoteHandler(t), http.MethodPost, "/api/checkout/quote", map[string]any{
		"items": []map[string]any{
			{"price": 750, "quantity": 2},
			{"price": 499.50, "quantity": 1},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Subtotal              decimal.Decimal `json:"subtotal"`
			Shipping              decimal.Decimal `json:"shipping"`
			Total                 decimal.Decimal `json:"total"`
			IsCODEnabled          bool            `json:"isCodEnabled"`
			EstimatedDeliveryDays string          `json:"estimatedDeliveryDays"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.True(t, envelope.Data.Subtotal.Equal(decimal.NewFromFloat(1999.50)), "subtotal %s", envelope.Data.Subtotal)
	assert.True(t, envelope.Data.Shipping.Equal(decimal.NewFromInt(100)), "shipping %s", envelope.Data.Shipping)
	assert.True(t, envelope.Data.Total.Equal(decimal.NewFromFloat(2099.50)), "total %s", envelope.Data.Total)
	assert.True(t, envelope.Data.IsCODEnabled)
	assert.NotEmpty(t, envelope.Data.EstimatedDeliveryDays)
}

func TestCheckoutQuoteFreeShippingAtThreshold(t *testing.T) {
	rec := postJSON(t, newQuoteHandler(t), http.MethodPost, "/api/checkout/quote", map[string]any{
		"items": []map[string]any{
			{"price": 1000, "quantity": 2},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data struct {
			Shipping decimal.Decimal `json:"shipping"`
			Total    decimal.Decimal `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.Shipping.IsZero(), "shipping %s", envelope.Data.Shipping)
	assert.True(t, envelope.Data.Total.Equal(decimal.NewFromInt(2000)), "total %s", envelope.Data.Total)
}

func TestCheckoutQuoteRequiresItems(t *testing.T) {
	rec := postJSON(t, newQuoteHandler(t), http.MethodPost, "/api/checkout/quote", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
