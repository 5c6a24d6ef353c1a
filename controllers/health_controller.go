package controllers

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthController reports liveness of the server and its store
type HealthController struct {
	check HealthCheck
}

// NewHealthController creates a new health controller
func NewHealthController(check HealthCheck) *HealthController {
	return &HealthController{
		check: check,
	}
}

// Index handles GET /health
func (c *HealthController) Index(w http.ResponseWriter, r *http.Request) {
	if c.check != nil {
		if err := c.check(r.Context()); err != nil {
			log.WithError(err).Error("Health check failed")
			respondJSON(w, r, http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Service: "leadsplatter"})
			return
		}
	}

	respondJSON(w, r, http.StatusOK, HealthResponse{Status: "healthy", Service: "leadsplatter"})
}
