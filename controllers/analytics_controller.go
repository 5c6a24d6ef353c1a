package controllers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/blogem/leadsplatter/services"
	"github.com/blogem/leadsplatter/userctx"
)

// AnalyticsController serves the admin dashboard data
type AnalyticsController struct {
	services *services.Services
}

// NewAnalyticsController creates a new analytics controller
func NewAnalyticsController(services *services.Services) *AnalyticsController {
	return &AnalyticsController{
		services: services,
	}
}

// Index handles GET /api/analytics
func (c *AnalyticsController) Index(w http.ResponseWriter, r *http.Request) {
	analytics, err := c.services.Lead.GetAnalytics(r.Context())
	if err != nil {
		log.WithError(err).WithField("user", userctx.GetUser(r.Context())).Error("Failed to load analytics")
		respondError(w, r, http.StatusInternalServerError, "Failed to load analytics")
		return
	}

	respondJSON(w, r, http.StatusOK, analytics)
}
