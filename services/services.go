package services

import (
	"github.com/blogem/leadsplatter/integrations/chat"
	"github.com/blogem/leadsplatter/integrations/checkout"
	"github.com/blogem/leadsplatter/integrations/crm"
	"github.com/blogem/leadsplatter/integrations/mailer"
	"github.com/blogem/leadsplatter/repositories"
)

// Integrations holds the external collaborators selected at startup
type Integrations struct {
	CRM      crm.Client
	Mailer   mailer.Sender
	Chat     chat.Relay
	Checkout checkout.Initiator
}

// Services holds all service instances
type Services struct {
	Lead     LeadService
	Chat     chat.Relay
	Checkout checkout.Initiator
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, integrations Integrations) *Services {
	return &Services{
		Lead:     NewLeadService(repos.Lead, integrations.CRM, integrations.Mailer),
		Chat:     integrations.Chat,
		Checkout: integrations.Checkout,
	}
}
