package controllers

import (
	"net/http"

	"github.com/nammaelampillai-official/namma-elampillai/api/responses"
	"github.com/nammaelampillai-official/namma-elampillai/api/validators"
	"github.com/nammaelampillai-official/namma-elampillai/internal/content"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

// ContentGet serves GET /api/content. Reads never fail: an empty or
// unreachable store yields the compiled defaults.
func ContentGet(svc *content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Get(r.Context()))
	}
}

// ContentSave serves POST /api/content (admin session required). The full
// document is replaced, unknown keys included.
func ContentSave(svc *content.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc content.Document
		if err := validators.DecodeJSONBody(r, &doc); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Save(r.Context(), &doc); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, &doc)
	}
}
