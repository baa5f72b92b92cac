package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog/log"
)

const healthPingTimeout = 2 * time.Second

type systemHandler struct {
	responder   Responder
	database    database.Database
	startupTime time.Time
}

func newSystemHandler(database database.Database, startupTime time.Time) systemHandler {
	logger := log.With().Str("handlerName", "systemHandler").Logger()

	return systemHandler{
		responder:   NewResponder(logger),
		database:    database,
		startupTime: startupTime,
	}
}

// health reports uptime and whether the database answers a ping
func (h systemHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		if err := h.database.Ping(ctx); err != nil {
			apiErr := errs.NewApiErr(http.StatusServiceUnavailable, "Database unavailable")
			apiErr.Cause = err
			h.responder.WriteError(w, r, apiErr)
			return
		}

		h.responder.WriteJSON(w, HealthResponse{
			Status:    "ok",
			Database:  "ok",
			StartedAt: h.startupTime.UTC().Format(time.RFC3339),
			Uptime:    time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
