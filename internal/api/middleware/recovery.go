package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/nhlstats/internal/api/apierr"
	"github.com/mcoot/nhlstats/internal/middleware"
)

// Recovery creates panic recovery middleware for the API.
// The panic is logged with the matched route and answered with a JSON 500;
// the panic value never reaches the client.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler, routeAttr)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
