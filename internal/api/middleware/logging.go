package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/nhlstats/internal/middleware"
)

// Logging creates request logging middleware for the API.
// Requests are tagged with the matched route template.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger, routeAttr)
}

func routeAttr(r *http.Request) slog.Attr {
	route := mux.CurrentRoute(r)
	if route == nil {
		return slog.String("route", "")
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return slog.String("route", "")
	}
	return slog.String("route", tmpl)
}
