package validators

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/nammaelampillai-official/namma-elampillai/pkg/errors"
)

// ParseQueryDecimal reads an optional decimal query parameter. A nil result
// means the parameter was absent.
func ParseQueryDecimal(r *http.Request, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").
			WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// QueryString reads a trimmed string query parameter.
func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
