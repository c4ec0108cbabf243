package controllers

import (
	"net/http"

	"github.com/nammaelampillai-official/namma-elampillai/api/responses"
	"github.com/nammaelampillai-official/namma-elampillai/api/validators"
	ordersvc "github.com/nammaelampillai-official/namma-elampillai/internal/orders"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/metrics"
)

// fallbackNote is surfaced to the portal when the listing came from the
// offline file instead of the primary database.
const fallbackNote = "Primary database unavailable. Showing locally saved orders."

// OrdersList serves GET /api/orders, optionally filtered to one seller.
func OrdersList(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ordersvc.ListFilter{SellerID: validators.QueryString(r, "manufacturerId")}

		result, err := svc.List(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if result.Source == metrics.StoreFallback {
			responses.WriteSuccessNote(w, result.Orders, fallbackNote)
			return
		}
		responses.WriteSuccess(w, result.Orders)
	}
}

// OrdersCreate serves POST /api/orders. Field presence is checked by the
// order service so the missing-field list reaches the storefront intact.
func OrdersCreate(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload ordersvc.CreateInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

type updateStatusRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

// OrdersUpdateStatus serves PATCH /api/orders. The status value is persisted
// as given; only presence is validated.
func OrdersUpdateStatus(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.UpdateStatus(r.Context(), payload.OrderID, enums.OrderStatus(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}
