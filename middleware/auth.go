package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"

	"github.com/blogem/leadsplatter/models"
	"github.com/blogem/leadsplatter/userctx"
)

const basicAuthRealm = `Basic realm="Leadsplatter Admin"`

// RequireBasicAuth protects a route with a single HTTP Basic credential pair.
// When either value is empty every request is rejected.
func RequireBasicAuth(user, password string) func(http.Handler) http.Handler {
	configured := user != "" && password != ""
	if !configured {
		log.Warn("Dashboard credentials not configured, analytics will reject every request")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser, gotPassword, ok := r.BasicAuth()
			if !configured || !ok || !secureEqual(gotUser, user) || !secureEqual(gotPassword, password) {
				log.WithFields(log.Fields{
					"path": r.URL.Path,
					"ip":   GetIPAddress(r),
				}).Warn("Unauthorized dashboard access")

				w.Header().Set("WWW-Authenticate", basicAuthRealm)
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, models.ErrorResponse{Error: "Unauthorized"})
				return
			}

			// Add user to request context for use in handlers
			ctx := userctx.SetUser(r.Context(), gotUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func secureEqual(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
