package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nammaelampillai-official/namma-elampillai/api/responses"
	"github.com/nammaelampillai-official/namma-elampillai/api/validators"
	"github.com/nammaelampillai-official/namma-elampillai/internal/checkout"
	"github.com/nammaelampillai-official/namma-elampillai/internal/content"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

type quoteLine struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type quoteRequest struct {
	Items []quoteLine `json:"items" validate:"required,min=1"`
}

type quoteResponse struct {
	checkout.Quote
	IsCODEnabled          bool   `json:"isCodEnabled"`
	EstimatedDeliveryDays string `json:"estimatedDeliveryDays"`
}

// CheckoutQuote serves POST /api/checkout/quote: prices a cart against the
// live shipping settings so the storefront shows the totals the order will
// carry.
func CheckoutQuote(contentSvc *content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload quoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lines := make([]checkout.Line, 0, len(payload.Items))
		for _, item := range payload.Items {
			lines = append(lines, checkout.Line{UnitPrice: item.Price, Quantity: item.Quantity})
		}

		settings := contentSvc.Checkout(r.Context())
		responses.WriteSuccess(w, quoteResponse{
			Quote:                 checkout.ComputeQuote(checkout.Subtotal(lines), settings),
			IsCODEnabled:          settings.IsCODEnabled,
			EstimatedDeliveryDays: settings.EstimatedDeliveryDays,
		})
	}
}
