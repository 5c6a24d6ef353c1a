package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v76"

	"github.com/blogem/leadsplatter/integrations/chat"
	integrationmocks "github.com/blogem/leadsplatter/integrations/mocks"
	"github.com/blogem/leadsplatter/models"
	"github.com/blogem/leadsplatter/services"
	servicemocks "github.com/blogem/leadsplatter/services/mocks"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

// APIControllersTestSuite exercises the JSON handlers against mocked services
type APIControllersTestSuite struct {
	suite.Suite
	leadService *servicemocks.MockLeadService
	chatRelay   *integrationmocks.MockChatRelay
	checkout    *integrationmocks.MockCheckoutInitiator
	healthErr   error
	controllers *Controllers
}

// SetupTest sets up the test suite before each test
func (s *APIControllersTestSuite) SetupTest() {
	s.leadService = servicemocks.NewMockLeadService(s.T())
	s.chatRelay = integrationmocks.NewMockChatRelay(s.T())
	s.checkout = integrationmocks.NewMockCheckoutInitiator(s.T())
	s.healthErr = nil

	srvs := &services.Services{
		Lead:     s.leadService,
		Chat:     s.chatRelay,
		Checkout: s.checkout,
	}
	s.controllers = NewControllers(srvs, func(context.Context) error { return s.healthErr }, s.T().TempDir())
}

func (s *APIControllersTestSuite) do(handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func (s *APIControllersTestSuite) TestCapture_Success() {
	s.leadService.EXPECT().
		CaptureLead(mock.Anything, &models.LeadForm{Email: "jane@acme.test", Company: "Acme", Phone: "555"}).
		Return(&services.CaptureResult{
			Lead: &models.Lead{ID: 9, Email: "jane@acme.test"},
			Effects: []services.EffectResult{
				{Effect: services.EffectCRMSync, Status: services.EffectDuplicate},
				{Effect: services.EffectWelcomeEmail, Status: services.EffectFailed, Err: errors.New("smtp down")},
			},
		}, nil)

	rec := s.do(s.controllers.Lead.Capture, http.MethodPost, "/api/crm/lead", `{"email":"jane@acme.test","company":"Acme","phone":"555"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"message":"Lead captured successfully","id":9}`, rec.Body.String())
}

func (s *APIControllersTestSuite) TestCapture_ValidationError() {
	s.leadService.EXPECT().CaptureLead(mock.Anything, mock.Anything).
		Return(nil, models.ValidationErrors{{Field: "email", Message: "Email is required"}})

	rec := s.do(s.controllers.Lead.Capture, http.MethodPost, "/api/crm/lead", `{"company":"Acme"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Email is required", decodeError(s.T(), rec))
}

func (s *APIControllersTestSuite) TestCapture_EmptyBodyIsValidated() {
	s.leadService.EXPECT().CaptureLead(mock.Anything, &models.LeadForm{}).
		Return(nil, models.ValidationErrors{{Field: "email", Message: "Email is required"}})

	rec := s.do(s.controllers.Lead.Capture, http.MethodPost, "/api/crm/lead", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("Email is required", decodeError(s.T(), rec))
}

func (s *APIControllersTestSuite) TestCapture_MalformedJSON() {
	rec := s.do(s.controllers.Lead.Capture, http.MethodPost, "/api/crm/lead", `{"email":`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(invalidBodyMessage, decodeError(s.T(), rec))
	s.leadService.AssertNotCalled(s.T(), "CaptureLead", mock.Anything, mock.Anything)
}

func (s *APIControllersTestSuite) TestCapture_PersistenceFailure() {
	s.leadService.EXPECT().CaptureLead(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to save lead: %w", errors.New("disk full")))

	rec := s.do(s.controllers.Lead.Capture, http.MethodPost, "/api/crm/lead", `{"email":"jane@acme.test"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Failed to save lead", decodeError(s.T(), rec))
}

func (s *APIControllersTestSuite) TestAnalytics_Success() {
	s.leadService.EXPECT().GetAnalytics(mock.Anything).Return(&models.Analytics{
		TotalLeads:  1,
		RecentLeads: []models.Lead{{ID: 1, Email: "a@acme.test", Source: "Web", Status: "New"}},
	}, nil)

	rec := s.do(s.controllers.Analytics.Index, http.MethodGet, "/api/analytics", "")

	s.Equal(http.StatusOK, rec.Code)
	var got models.Analytics
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(1, got.TotalLeads)
	s.Equal("a@acme.test", got.RecentLeads[0].Email)
}

func (s *APIControllersTestSuite) TestAnalytics_EmptyListEncodesAsArray() {
	s.leadService.EXPECT().GetAnalytics(mock.Anything).Return(&models.Analytics{RecentLeads: []models.Lead{}}, nil)

	rec := s.do(s.controllers.Analytics.Index, http.MethodGet, "/api/analytics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"totalLeads":0,"recentLeads":[]}`, rec.Body.String())
}

func (s *APIControllersTestSuite) TestAnalytics_Failure() {
	s.leadService.EXPECT().GetAnalytics(mock.Anything).Return(nil, errors.New("failed to count leads"))

	rec := s.do(s.controllers.Analytics.Index, http.MethodGet, "/api/analytics", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *APIControllersTestSuite) TestChat_Success() {
	s.chatRelay.EXPECT().Reply(mock.Anything, "How much is Pro?").Return("Pro is $149 per month.", nil)

	rec := s.do(s.controllers.Chat.Reply, http.MethodPost, "/api/ai/chat", `{"message":"How much is Pro?"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"response":"Pro is $149 per month."}`, rec.Body.String())
}

func (s *APIControllersTestSuite) TestChat_MissingMessage() {
	for _, body := range []string{`{}`, `{"message":"   "}`, ""} {
		rec := s.do(s.controllers.Chat.Reply, http.MethodPost, "/api/ai/chat", body)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("Message is required", decodeError(s.T(), rec))
	}
	s.chatRelay.AssertNotCalled(s.T(), "Reply", mock.Anything, mock.Anything)
}

func (s *APIControllersTestSuite) TestChat_ModelLoading() {
	s.chatRelay.EXPECT().Reply(mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: model is currently loading", chat.ErrModelLoading))

	rec := s.do(s.controllers.Chat.Reply, http.MethodPost, "/api/ai/chat", `{"message":"hi"}`)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("Model is loading, please try again in 20 seconds.", decodeError(s.T(), rec))
}

func (s *APIControllersTestSuite) TestChat_UpstreamFailure() {
	s.chatRelay.EXPECT().Reply(mock.Anything, mock.Anything).Return("", errors.New("inference API returned 401"))

	rec := s.do(s.controllers.Chat.Reply, http.MethodPost, "/api/ai/chat", `{"message":"hi"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Failed to generate AI response", decodeError(s.T(), rec))
}

func (s *APIControllersTestSuite) TestCheckout_Success() {
	s.checkout.EXPECT().CreateSession(mock.Anything, "Pro").Return("https://checkout.stripe.com/c/pay/cs_test_1", nil)

	rec := s.do(s.controllers.Checkout.CreateSession, http.MethodPost, "/api/create-checkout-session", `{"plan":"Pro"}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"url":"https://checkout.stripe.com/c/pay/cs_test_1"}`, rec.Body.String())
}

func (s *APIControllersTestSuite) TestCheckout_ProviderError() {
	s.checkout.EXPECT().CreateSession(mock.Anything, "Pro").
		Return("", fmt.Errorf("failed to create checkout session: %w", &stripe.Error{Msg: "Invalid API Key provided"}))

	rec := s.do(s.controllers.Checkout.CreateSession, http.MethodPost, "/api/create-checkout-session", `{"plan":"Pro"}`)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Invalid API Key provided", decodeError(s.T(), rec))
}

func (s *APIControllersTestSuite) TestHealth() {
	rec := s.do(s.controllers.Health.Index, http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"healthy","service":"leadsplatter"}`, rec.Body.String())

	s.healthErr = errors.New("database is closed")
	rec = s.do(s.controllers.Health.Index, http.MethodGet, "/health", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

// TestAPIControllersTestSuite runs the API controllers test suite
func TestAPIControllersTestSuite(t *testing.T) {
	suite.Run(t, new(APIControllersTestSuite))
}

func writeStaticFile(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestSPAController_Serve(t *testing.T) {
	root := t.TempDir()
	writeStaticFile(t, root, "index.html", "<!doctype html><title>Leadsplatter</title>")
	writeStaticFile(t, root, "assets/app.js", "console.log('hi')")
	writeStaticFile(t, root, "assets/logo.noext", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	spa := NewSPAController(root)

	tests := []struct {
		name        string
		path        string
		wantStatus  int
		wantBody    string
		contentType string
	}{
		{name: "existing asset", path: "/assets/app.js", wantStatus: http.StatusOK, wantBody: "console.log('hi')", contentType: "javascript"},
		{name: "root", path: "/", wantStatus: http.StatusOK, wantBody: "<title>Leadsplatter</title>", contentType: "text/html"},
		{name: "client route", path: "/pricing", wantStatus: http.StatusOK, wantBody: "<title>Leadsplatter</title>", contentType: "text/html"},
		{name: "traversal", path: "/../../etc/passwd", wantStatus: http.StatusOK, wantBody: "<title>Leadsplatter</title>", contentType: "text/html"},
		{name: "unknown extension sniffed", path: "/assets/logo.noext", wantStatus: http.StatusOK, contentType: "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.URL.Path = tt.path
			rec := httptest.NewRecorder()

			spa.Serve(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.contentType != "" {
				assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
			}
		})
	}
}

func TestSPAController_MissingBuild(t *testing.T) {
	spa := NewSPAController(filepath.Join(t.TempDir(), "dist"))

	rec := httptest.NewRecorder()
	spa.Serve(rec, httptest.NewRequest(http.MethodGet, "/pricing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
