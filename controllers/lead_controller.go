package controllers

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/blogem/leadsplatter/models"
	"github.com/blogem/leadsplatter/services"
)

// CaptureResponse is returned after a lead has been stored
type CaptureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// LeadController handles lead capture requests
type LeadController struct {
	services *services.Services
}

// NewLeadController creates a new lead controller
func NewLeadController(services *services.Services) *LeadController {
	return &LeadController{
		services: services,
	}
}

// Capture handles POST /api/crm/lead
func (c *LeadController) Capture(w http.ResponseWriter, r *http.Request) {
	var form models.LeadForm
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, r, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	result, err := c.services.Lead.CaptureLead(r.Context(), &form)
	if err != nil {
		var validationErrs models.ValidationErrors
		if errors.As(err, &validationErrs) && validationErrs.HasErrors() {
			respondError(w, r, http.StatusBadRequest, validationErrs[0].Message)
			return
		}

		log.WithError(err).Error("Failed to capture lead")
		respondError(w, r, http.StatusInternalServerError, "Failed to save lead")
		return
	}

	logEffects(result)

	respondJSON(w, r, http.StatusOK, CaptureResponse{
		Success: true,
		Message: "Lead captured successfully",
		ID:      result.Lead.ID,
	})
}

// logEffects records the outcome of each side effect; none of them reach the client
func logEffects(result *services.CaptureResult) {
	for _, effect := range result.Effects {
		entry := log.WithFields(log.Fields{
			"lead_id": result.Lead.ID,
			"effect":  effect.Effect,
			"status":  effect.Status,
		})

		switch effect.Status {
		case services.EffectFailed:
			entry.WithError(effect.Err).Warn("Lead side effect failed")
		case services.EffectDuplicate:
			entry.Info("Contact already exists in CRM")
		case services.EffectSkipped:
			entry.Debug("Lead side effect skipped")
		default:
			entry.Info("Lead side effect delivered")
		}
	}
}
