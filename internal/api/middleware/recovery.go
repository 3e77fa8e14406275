package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/kohlenschlagen/internal/api/apierr"
	"github.com/mcoot/kohlenschlagen/internal/metrics"
	"github.com/mcoot/kohlenschlagen/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// Panics become INTERNAL_ERROR JSON responses.
func Recovery(logger *slog.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, m, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
