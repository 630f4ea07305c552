package middleware

import (
	"net/http"

	"github.com/advising-studio/engine/internal/api/envelope"
)

// CORS installs policy for the rest of the chain and stamps its headers on
// every response before any handler runs, so plain http.Error replies are
// covered too. OPTIONS requests never reach the router.
func CORS(policy envelope.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(envelope.WithPolicy(r.Context(), policy))
			if r.Method == http.MethodOptions {
				policy.Preflight(w, r)
				return
			}
			policy.Apply(w, r)
			next.ServeHTTP(w, r)
		})
	}
}
