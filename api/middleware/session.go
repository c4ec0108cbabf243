package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nammaelampillai-official/namma-elampillai/api/responses"
	"github.com/nammaelampillai-official/namma-elampillai/internal/auth"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/enums"
	pkgerrors "github.com/nammaelampillai-official/namma-elampillai/pkg/errors"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
)

type sessionCtxKey struct{}

// Session validates the Bearer session token and stores its claims on the
// request context.
func Session(tokens *auth.TokenIssuer, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session token required"))
				return
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid session token"))
				return
			}

			ctx := context.WithValue(r.Context(), sessionCtxKey{}, claims)
			if logg != nil {
				ctx = logg.WithActorRole(ctx, claims.Role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects sessions that do not carry the given role.
func RequireRole(role enums.Role, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := SessionFromContext(r.Context())
			if claims == nil || claims.Role != string(role) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromContext returns the verified claims, or nil outside a session.
func SessionFromContext(ctx context.Context) *auth.SessionClaims {
	claims, _ := ctx.Value(sessionCtxKey{}).(*auth.SessionClaims)
	return claims
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
