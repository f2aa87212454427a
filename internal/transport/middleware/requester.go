package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/alarino/alarino-backend/internal/domain"
	"github.com/alarino/alarino-backend/pkg/ctxutil"
)

// Requester captures the caller's IP and User-Agent into the context
// so the missing-word ledger can attribute lookups.
func Requester(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		meta := domain.RequesterMeta{
			IP:        clientIP(r),
			UserAgent: r.UserAgent(),
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequester(r.Context(), meta)))
	})
}

// clientIP prefers the first X-Forwarded-For hop, the usual shape
// behind a reverse proxy, and falls back to the socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
