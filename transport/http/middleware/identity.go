package middleware

import (
	"context"
	"lendit/shared/constant"
	"net/http"
)

// Identity lifts the caller id from the gateway-provided header into the
// request context. Endpoints that require an identity reject requests
// without it themselves; public endpoints just proceed.
func (a *appMiddleware) Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(constant.RequestHeaderUserID)
		if userID != "" {
			ctx := context.WithValue(r.Context(), constant.ContextKeyUserID, userID)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}
