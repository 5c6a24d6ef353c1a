package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"github.com/blogem/leadsplatter/models"
	"github.com/blogem/leadsplatter/services"
)

const invalidBodyMessage = "Invalid request body"

// respondJSON writes v as JSON with the given status code
func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, v interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, v)
}

// respondError writes the standard {"error": message} body
func respondError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	respondJSON(w, r, statusCode, models.ErrorResponse{Error: message})
}

// decodeJSON decodes the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := render.DecodeJSON(r.Body, v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

// Controllers holds all controller instances
type Controllers struct {
	Lead      *LeadController
	Analytics *AnalyticsController
	Chat      *ChatController
	Checkout  *CheckoutController
	Health    *HealthController
	SPA       *SPAController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, healthCheck HealthCheck, staticDir string) *Controllers {
	return &Controllers{
		Lead:      NewLeadController(services),
		Analytics: NewAnalyticsController(services),
		Chat:      NewChatController(services),
		Checkout:  NewCheckoutController(services),
		Health:    NewHealthController(healthCheck),
		SPA:       NewSPAController(staticDir),
	}
}
