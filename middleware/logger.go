package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// RequestLogger logs one structured line per request once the response is written
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			entry := log.WithFields(log.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     status,
				"bytes":      ww.BytesWritten(),
				"duration":   time.Since(start).String(),
				"ip":         GetIPAddress(r),
				"request_id": middleware.GetReqID(r.Context()),
			})

			switch {
			case status >= http.StatusInternalServerError:
				entry.Error("Request completed")
			case status >= http.StatusBadRequest:
				entry.Warn("Request completed")
			default:
				entry.Info("Request completed")
			}
		}()

		next.ServeHTTP(ww, r)
	})
}
