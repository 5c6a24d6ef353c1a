package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/leadsplatter/userctx"
)

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(userctx.GetUser(r.Context())))
	})
}

func TestRequireBasicAuth(t *testing.T) {
	handler := RequireBasicAuth("admin", "s3cret")(echoUser())

	tests := []struct {
		name       string
		setAuth    bool
		user       string
		password   string
		wantStatus int
	}{
		{name: "valid", setAuth: true, user: "admin", password: "s3cret", wantStatus: http.StatusOK},
		{name: "no credentials", wantStatus: http.StatusUnauthorized},
		{name: "wrong password", setAuth: true, user: "admin", password: "nope", wantStatus: http.StatusUnauthorized},
		{name: "wrong user", setAuth: true, user: "root", password: "s3cret", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.user, tt.password)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="Leadsplatter Admin"`, rec.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			} else {
				assert.Equal(t, "admin", rec.Body.String())
			}
		})
	}
}

func TestRequireBasicAuth_Unconfigured(t *testing.T) {
	handler := RequireBasicAuth("", "")(echoUser())

	req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	req.SetBasicAuth("", "")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetIPAddress(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded for", headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1", "X-Real-IP": "10.0.0.2"}, remote: "10.0.0.3:5555", want: "203.0.113.7"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "198.51.100.4"}, remote: "10.0.0.3:5555", want: "198.51.100.4"},
		{name: "remote addr", remote: "192.0.2.9:41000", want: "192.0.2.9"},
		{name: "ipv6 remote addr", remote: "[2001:db8::1]:41000", want: "2001:db8::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, GetIPAddress(req))

			key, err := IPKey(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestAuditLogger_LogsMutationsOnly(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	handler := AuditLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/analytics", nil))
	assert.Empty(t, hook.AllEntries())

	req := httptest.NewRequest(http.MethodPost, "/api/crm/lead", nil)
	req.Header.Set("User-Agent", "curl/8.0")
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, "Audit", entry.Message)
	assert.Equal(t, "POST", entry.Data["method"])
	assert.Equal(t, "/api/crm/lead", entry.Data["path"])
	assert.Equal(t, "203.0.113.7", entry.Data["ip"])
	assert.Equal(t, "curl/8.0", entry.Data["user_agent"])
	assert.Equal(t, "anonymous", entry.Data["user"])
}

func TestRequestLogger(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pot", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.WarnLevel, entry.Level)
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, "/pot", entry.Data["path"])
	assert.Equal(t, 15, entry.Data["bytes"])
}
