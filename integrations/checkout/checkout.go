package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/leadsplatter/integrations"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// MockSessionURL is returned instead of a real session when no payment key is configured.
const MockSessionURL = "https://checkout.stripe.com/c/pay/cs_test_mock_leadsplatter"

const (
	successPath = "/success?session_id={CHECKOUT_SESSION_ID}"
	cancelPath  = "/#pricing"
)

// Prices maps plan names (lower case) to provider price identifiers
var Prices = map[string]string{
	"starter":    "price_leadsplatter_starter_monthly",
	"pro":        "price_leadsplatter_pro_monthly",
	"enterprise": "price_leadsplatter_enterprise_monthly",
}

// DefaultPrice is used for plan names missing from Prices
const DefaultPrice = "price_leadsplatter_starter_monthly"

// Initiator creates hosted checkout sessions
type Initiator interface {
	CreateSession(ctx context.Context, plan string) (string, error)
	Mode() integrations.Mode
}

// ResolvePrice returns the price identifier for a plan, case-insensitively,
// falling back to DefaultPrice
func ResolvePrice(plan string) string {
	if price, ok := Prices[strings.ToLower(strings.TrimSpace(plan))]; ok {
		return price
	}
	return DefaultPrice
}

// Config holds the payment provider settings
type Config struct {
	SecretKey string
	PublicURL string
}

// New selects the Stripe initiator when a secret key is configured and the
// mock initiator otherwise
func New(cfg Config) Initiator {
	if cfg.SecretKey == "" {
		return mockInitiator{}
	}

	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	return NewStripeInitiator(sc.CheckoutSessions, cfg.PublicURL)
}

// SessionCreator is the part of the Stripe checkout session client we use
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeInitiator creates subscription checkout sessions through Stripe
type StripeInitiator struct {
	sessions   SessionCreator
	successURL string
	cancelURL  string
}

// NewStripeInitiator creates a Stripe initiator redirecting back to publicURL
func NewStripeInitiator(sessions SessionCreator, publicURL string) *StripeInitiator {
	base := strings.TrimSuffix(publicURL, "/")
	return &StripeInitiator{
		sessions:   sessions,
		successURL: base + successPath,
		cancelURL:  base + cancelPath,
	}
}

// Mode reports the live variant
func (s *StripeInitiator) Mode() integrations.Mode {
	return integrations.ModeLive
}

// CreateSession creates a subscription-mode session for the plan and returns its hosted URL
func (s *StripeInitiator) CreateSession(ctx context.Context, plan string) (string, error) {
	reference := uuid.NewString()
	price := ResolvePrice(plan)

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(price),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.successURL),
		CancelURL:         stripe.String(s.cancelURL),
		ClientReferenceID: stripe.String(reference),
	}
	params.Context = ctx
	params.AddMetadata("plan", plan)

	session, err := s.sessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	log.WithFields(log.Fields{
		"plan":       plan,
		"price":      price,
		"session_id": session.ID,
		"reference":  reference,
	}).Info("Checkout session created")

	return session.URL, nil
}

// ProviderMessage extracts the human readable message from a provider error
func ProviderMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}

type mockInitiator struct{}

func (mockInitiator) Mode() integrations.Mode {
	return integrations.ModeMock
}

func (mockInitiator) CreateSession(_ context.Context, plan string) (string, error) {
	log.WithField("plan", plan).Info("Payment provider not configured, returning mock checkout session")
	return MockSessionURL, nil
}
