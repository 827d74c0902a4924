package middleware

import (
	"net"
	"net/http"
)

// Limiter — ограничитель по ключу, см. internal/ratelimit.
type Limiter interface {
	Allow(key string) bool
}

// WithRateLimit отвечает 429, если клиент (по IP) превысил лимит.
func WithRateLimit(l Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(clientIP(r)) {
				writeMessage(w, http.StatusTooManyRequests, "Too many requests.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
