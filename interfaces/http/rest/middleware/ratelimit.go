package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"beacon-backend/pkg/auth"
)

// RateLimit rejects requests over the per-IP budget with 429
func RateLimit(limiter *auth.IPRateLimiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := r.RemoteAddr
			if host, _, err := net.SplitHostPort(ip); err == nil {
				ip = host
			}

			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				logger.Warn("Rate limiter failed, letting request through",
					zap.String("ip", ip),
					zap.Error(err),
				)
				allowed = true
			}
			if !allowed {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"success":false,"error":{"code":"RATE_LIMITED","message":"too many requests"}}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
