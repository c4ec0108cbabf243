package controllers

import (
	"net/http"

	"github.com/nammaelampillai-official/namma-elampillai/api/responses"
	"github.com/nammaelampillai-official/namma-elampillai/api/validators"
	ordersvc "github.com/nammaelampillai-official/namma-elampillai/internal/orders"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

// AdminStats serves GET /api/admin/stats for the dashboard cards. The
// aggregate reads through the fallback-aware order listing.
func AdminStats(svc *ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context(), validators.QueryString(r, "manufacturerId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}
