package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/blogem/leadsplatter/userctx"
)

// AuditLogger middleware logs all POST/PUT/DELETE requests
func AuditLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only log mutation operations
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
			log.WithFields(log.Fields{
				"user":       userctx.GetUser(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"user_agent": r.UserAgent(),
				"ip":         GetIPAddress(r),
				"request_id": middleware.GetReqID(r.Context()),
			}).Info("Audit")
		}

		next.ServeHTTP(w, r)
	})
}

// GetIPAddress extracts IP address from request, checking X-Forwarded-For first
func GetIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return strings.TrimSpace(realIP)
	}

	// Fall back to RemoteAddr without its port
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// IPKey is an httprate key function bucketing requests by client IP
func IPKey(r *http.Request) (string, error) {
	return GetIPAddress(r), nil
}
