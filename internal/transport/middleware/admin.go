package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// AdminKey returns middleware that gates admin endpoints behind a
// static bearer key. An empty configured key disables the endpoints
// entirely rather than leaving them open.
func AdminKey(key string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				http.Error(w, "admin endpoints disabled", http.StatusServiceUnavailable)
				return
			}

			presented, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
