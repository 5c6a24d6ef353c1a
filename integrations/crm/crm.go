package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blogem/leadsplatter/integrations"
	log "github.com/sirupsen/logrus"
)

const (
	contactsPath = "/crm/v3/objects/contacts"

	// Placeholder for the last name the CRM requires; the form does not ask for it.
	placeholderLastName = "Lead (Leadsplatter)"
	lifecycleStageLead  = "lead"
)

// ErrContactExists is returned when the CRM already holds a contact with the email.
var ErrContactExists = errors.New("crm: contact already exists")

// Contact is the subset of a lead the CRM receives
type Contact struct {
	Email   string
	Phone   string
	Company string
}

// Client creates contacts in the CRM
type Client interface {
	CreateContact(ctx context.Context, contact Contact) error
	Mode() integrations.Mode
}

// Config holds CRM client configuration
type Config struct {
	AccessToken string
	BaseURL     string
	Timeout     time.Duration
}

// New selects the HubSpot client when a token is configured and the
// disabled client otherwise.
func New(cfg Config) Client {
	if cfg.AccessToken == "" {
		return disabledClient{}
	}
	return NewHubSpotClient(cfg.BaseURL, integrations.NewHTTPClient(cfg.AccessToken, cfg.Timeout))
}

// HubSpotClient creates contacts through the HubSpot CRM v3 API
type HubSpotClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHubSpotClient creates a HubSpot client. httpClient must attach the bearer token.
func NewHubSpotClient(baseURL string, httpClient *http.Client) *HubSpotClient {
	return &HubSpotClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

type contactProperties struct {
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Company        string `json:"company,omitempty"`
	LastName       string `json:"lastname"`
	LifecycleStage string `json:"lifecyclestage"`
}

type createContactRequest struct {
	Properties contactProperties `json:"properties"`
}

// Mode reports the live variant
func (c *HubSpotClient) Mode() integrations.Mode {
	return integrations.ModeLive
}

// CreateContact issues a single contact creation request
func (c *HubSpotClient) CreateContact(ctx context.Context, contact Contact) error {
	body := createContactRequest{
		Properties: contactProperties{
			Email:          contact.Email,
			Phone:          contact.Phone,
			Company:        contact.Company,
			LastName:       placeholderLastName,
			LifecycleStage: lifecycleStageLead,
		},
	}

	payloadBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+contactsPath, bytes.NewReader(payloadBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		return ErrContactExists
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	log.WithField("email", contact.Email).Debug("Contact created in CRM")
	return nil
}

type disabledClient struct{}

func (disabledClient) Mode() integrations.Mode {
	return integrations.ModeDisabled
}

func (disabledClient) CreateContact(context.Context, Contact) error {
	return integrations.ErrDisabled
}
