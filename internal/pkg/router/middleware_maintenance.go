package router

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/smartlocker/internal/pkg/config"
)

// middlewareMaintenance answers 503 for blocked routes.
//
// Entries of app.maintenance.endpoints are either a route pattern
// ("/api/lockers/:id/otp"), which blocks every method, or a method and a
// pattern ("POST /api/lockers/:id/otp").
func middlewareMaintenance(cfg config.Config) Middleware {
	endpoints := make(map[string]struct{})
	if cfg != nil {
		for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
			endpoint = strings.Join(strings.Fields(endpoint), " ")
			if endpoint == "" {
				continue
			}
			if method, route, ok := strings.Cut(endpoint, " "); ok {
				endpoint = strings.ToUpper(method) + " " + route
			}
			endpoints[endpoint] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		if len(endpoints) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			_, blockedAll := endpoints[route]
			_, blockedMethod := endpoints[r.Method+" "+route]
			if blockedAll || blockedMethod {
				writeJSON(w, errorResponse{Message: "service is under maintenance"}, http.StatusServiceUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
