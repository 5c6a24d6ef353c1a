package controllers

import (
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/blogem/leadsplatter/integrations/chat"
	"github.com/blogem/leadsplatter/services"
)

// ChatRequest is the body of a chat message
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the assistant's reply
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatController relays visitor questions to the sales assistant
type ChatController struct {
	services *services.Services
}

// NewChatController creates a new chat controller
func NewChatController(services *services.Services) *ChatController {
	return &ChatController{
		services: services,
	}
}

// Reply handles POST /api/ai/chat
func (c *ChatController) Reply(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, invalidBodyMessage)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		respondError(w, r, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := c.services.Chat.Reply(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrModelLoading) {
			log.WithError(err).Warn("Chat model is still loading")
			respondError(w, r, http.StatusServiceUnavailable, "Model is loading, please try again in 20 seconds.")
			return
		}

		log.WithError(err).Error("Failed to generate chat reply")
		respondError(w, r, http.StatusInternalServerError, "Failed to generate AI response")
		return
	}

	respondJSON(w, r, http.StatusOK, ChatResponse{Response: reply})
}
