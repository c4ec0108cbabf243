package controllers

import (
	"net/http"

	"github.com/nammaelampillai-official/namma-elampillai/api/responses"
	"github.com/nammaelampillai-official/namma-elampillai/api/validators"
	"github.com/nammaelampillai-official/namma-elampillai/internal/mailer"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
	pkgerrors "github.com/nammaelampillai-official/namma-elampillai/pkg/errors"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

type enquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// Enquiry serves POST /api/enquiry. The notice carries the customer address
// as Reply-To so staff can answer directly.
func Enquiry(notifier *mailer.Dispatcher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload enquiryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result := notifier.Dispatch(r.Context(), enums.NotificationEnquiry, mailer.Payload{
			Name:    payload.Name,
			Email:   payload.Email,
			Phone:   payload.Phone,
			Message: payload.Message,
		})
		if result.Err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, result.Err, "enquiry could not be delivered"))
			return
		}
		responses.WriteSuccess(w, map[string]bool{"sent": true})
	}
}
