package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/graceful-shutdown/internal/ports"
)

// Draining returns middleware that answers with "Connection: close" once the
// service is no longer ready. Keep-alive clients then reconnect, and the load
// balancer routes the new connection to an instance that is still in rotation.
// In-flight and new requests are still served until the server shuts down.
func Draining(readiness ports.ReadinessReporter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !readiness.Ready() {
				w.Header().Set("Connection", "close")
			}
			next.ServeHTTP(w, r)
		})
	}
}

// draining reports whether any of the given reporters went not-ready.
func draining(readiness []ports.ReadinessReporter) bool {
	for _, rr := range readiness {
		if rr != nil && !rr.Ready() {
			return true
		}
	}
	return false
}
