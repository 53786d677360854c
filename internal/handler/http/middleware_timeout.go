package http

import (
	"context"
	"net/http"
)

// withTimeout bounds every request with the configured deadline. A slow
// database query then fails with context.DeadlineExceeded, which the store
// layer reports as a query timeout, instead of hanging the connection.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.RequestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
