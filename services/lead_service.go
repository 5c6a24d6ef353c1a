package services

import (
	"context"
	"fmt"

	"github.com/blogem/leadsplatter/integrations/crm"
	"github.com/blogem/leadsplatter/integrations/mailer"
	"github.com/blogem/leadsplatter/models"
	"github.com/blogem/leadsplatter/repositories"
)

// RecentLeadsLimit is the number of leads shown on the analytics dashboard
const RecentLeadsLimit = 5

// LeadService interface defines lead capture and analytics business logic
type LeadService interface {
	CaptureLead(ctx context.Context, form *models.LeadForm) (*CaptureResult, error)
	GetAnalytics(ctx context.Context) (*models.Analytics, error)
}

// CaptureResult is the persisted lead plus the outcome of each side effect
type CaptureResult struct {
	Lead    *models.Lead
	Effects []EffectResult
}

// leadService implements LeadService interface
type leadService struct {
	leadRepo repositories.LeadRepository
	crm      crm.Client
	mailer   mailer.Sender
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repositories.LeadRepository, crmClient crm.Client, sender mailer.Sender) LeadService {
	return &leadService{
		leadRepo: leadRepo,
		crm:      crmClient,
		mailer:   sender,
	}
}

// CaptureLead validates and persists the lead, then forwards it to the CRM and
// sends the welcome email. Only validation and persistence can fail the
// capture; the side effects are attempted once each and reported in the result.
func (s *leadService) CaptureLead(ctx context.Context, form *models.LeadForm) (*CaptureResult, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	lead := form.ToLead()
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	// The lead is stored; a client hanging up must not abort the side effects.
	effectCtx := context.WithoutCancel(ctx)

	crmErr := s.crm.CreateContact(effectCtx, crm.Contact{
		Email:   lead.Email,
		Phone:   lead.Phone,
		Company: lead.Company,
	})

	// The form has no name field, so the company doubles as the greeting name.
	mailErr := s.mailer.SendWelcome(effectCtx, lead.Email, lead.Company)

	return &CaptureResult{
		Lead: lead,
		Effects: []EffectResult{
			newEffectResult(EffectCRMSync, crmErr),
			newEffectResult(EffectWelcomeEmail, mailErr),
		},
	}, nil
}

// GetAnalytics returns the total lead count and the most recent leads
func (s *leadService) GetAnalytics(ctx context.Context) (*models.Analytics, error) {
	total, err := s.leadRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	recent, err := s.leadRepo.GetRecent(ctx, RecentLeadsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent leads: %w", err)
	}
	if recent == nil {
		recent = []models.Lead{}
	}

	return &models.Analytics{
		TotalLeads:  total,
		RecentLeads: recent,
	}, nil
}
