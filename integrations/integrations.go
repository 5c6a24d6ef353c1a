// Package integrations holds what the external collaborators share: the
// live/disabled strategy vocabulary and the outbound HTTP client.
//
// Every collaborator (CRM, mail relay, inference endpoint, payment provider)
// has a live variant and a disabled or mock variant. The variant is chosen
// once at startup from the configured credentials.
package integrations

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// ErrDisabled is returned by disabled variants instead of calling out.
var ErrDisabled = errors.New("integration disabled: no credential configured")

// Mode names the variant selected for an integration.
type Mode string

const (
	ModeLive     Mode = "live"
	ModeDisabled Mode = "disabled"
	ModeMock     Mode = "mock"
)

// NewHTTPClient returns a client that attaches token as a bearer credential.
// An empty token yields a plain client.
func NewHTTPClient(token string, timeout time.Duration) *http.Client {
	if token == "" {
		return &http.Client{Timeout: timeout}
	}

	base := &http.Client{Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))
	client.Timeout = timeout
	return client
}
