package controllers

import (
	"net/http"

	"github.com/nammaelampillai-official/namma-elampillai/api/responses"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/config"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/db"
	pkgerrors "github.com/nammaelampillai-official/namma-elampillai/pkg/errors"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/logger"
	"github.com/nammaelampillai-official/namma-elampillai/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Namma-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the primary database (and redis when configured) are
// reachable. The fallback file keeps order writes alive even when this
// reports not ready, so the check is informational for the storefront.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Namma-Env", cfg.App.Env)

		checks := map[string]string{"db": "ok"}
		if err := dbP.Ping(r.Context()); err != nil {
			checks["db"] = "unreachable"
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database not ready").WithDetails(checks))
			return
		}
		if redisP != nil {
			checks["redis"] = "ok"
			if err := redisP.Ping(r.Context()); err != nil {
				checks["redis"] = "unreachable"
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis not ready").WithDetails(checks))
				return
			}
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
