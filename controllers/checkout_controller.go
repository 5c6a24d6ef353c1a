package controllers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/blogem/leadsplatter/integrations/checkout"
	"github.com/blogem/leadsplatter/services"
)

// CheckoutRequest names the plan being purchased
type CheckoutRequest struct {
	Plan string `json:"plan"`
}

// CheckoutResponse carries the hosted payment page URL
type CheckoutResponse struct {
	URL string `json:"url"`
}

// CheckoutController starts subscription purchases
type CheckoutController struct {
	services *services.Services
}

// NewCheckoutController creates a new checkout controller
func NewCheckoutController(services *services.Services) *CheckoutController {
	return &CheckoutController{
		services: services,
	}
}

// CreateSession handles POST /api/create-checkout-session
func (c *CheckoutController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	url, err := c.services.Checkout.CreateSession(r.Context(), req.Plan)
	if err != nil {
		log.WithError(err).WithField("plan", req.Plan).Error("Failed to create checkout session")
		respondError(w, r, http.StatusInternalServerError, checkout.ProviderMessage(err))
		return
	}

	respondJSON(w, r, http.StatusOK, CheckoutResponse{URL: url})
}
