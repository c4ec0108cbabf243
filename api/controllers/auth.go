package controllers

import (
	"net/http"

	"github.com/nammaelampillai-official/namma-elampillai/api/responses"
	"github.com/nammaelampillai-official/namma-elampillai/api/validators"
	authsvc "github.com/nammaelampillai-official/namma-elampillai/internal/auth"
	"github.com/nammaelampillai-official/namma-elampillai/internal/mailer"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

// AuthLogin serves POST /api/auth/login for the admin/partner portal.
func AuthLogin(svc *authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload authsvc.Credentials
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		grant, err := svc.Authorize(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, grant)
	}
}

type signupRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// AuthSignup serves POST /api/auth/signup. Customer accounts are not stored
// server-side; the signup only fires the operational notice.
func AuthSignup(notifier *mailer.Dispatcher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload signupRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notifier.Dispatch(r.Context(), enums.NotificationCustomerSignup, mailer.Payload{
			Name:  payload.Name,
			Email: payload.Email,
			Phone: payload.Phone,
		})
		responses.WriteSuccess(w, map[string]bool{"registered": true})
	}
}
