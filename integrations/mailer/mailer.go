package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/blogem/leadsplatter/integrations"
	log "github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

const (
	welcomeSubject = "Welcome to Leadsplatter! 🚀"
	welcomeBody    = `Hi %s,

Thanks for joining. Here is your free guide to AI Lead Gen.

Over the next few days we will follow up with case studies from teams
already using Leadsplatter to find better leads.

The Leadsplatter Team
`

	followUpSubject = "Case Studies"
	followUpDelay   = 3 * 24 * time.Hour
)

// Sender dispatches the welcome message to a newly captured lead
type Sender interface {
	SendWelcome(ctx context.Context, to, name string) error
	Mode() integrations.Mode
}

// Config holds the mail relay settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// New selects the SMTP sender when a relay host and credential are configured
func New(cfg Config) Sender {
	if cfg.Host == "" || cfg.Password == "" {
		return disabledSender{}
	}
	return NewSMTPSender(cfg)
}

// SMTPSender sends mail through an authenticated SMTP relay
type SMTPSender struct {
	cfg Config
}

// NewSMTPSender creates an SMTP sender
func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Mode reports the live variant
func (s *SMTPSender) Mode() integrations.Mode {
	return integrations.ModeLive
}

// SendWelcome composes the welcome message and dispatches it once
func (s *SMTPSender) SendWelcome(ctx context.Context, to, name string) error {
	msg, err := ComposeWelcome(s.cfg.From, to, name)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.cfg.Timeout))
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	log.WithField("to", to).Info("Welcome email sent")
	logFollowUp(to)
	return nil
}

// logFollowUp records the drip follow-up scheduled after the welcome message
func logFollowUp(to string) {
	log.WithFields(log.Fields{
		"to":      to,
		"subject": followUpSubject,
		"delay":   followUpDelay.String(),
	}).Info("Follow-up email queued")
}

// ComposeWelcome builds the fixed welcome message. An empty name greets "there".
func ComposeWelcome(from, to, name string) (*mail.Msg, error) {
	if name == "" {
		name = "there"
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(welcomeSubject)
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(welcomeBody, name))

	return msg, nil
}

type disabledSender struct{}

func (disabledSender) Mode() integrations.Mode {
	return integrations.ModeDisabled
}

func (disabledSender) SendWelcome(_ context.Context, to, _ string) error {
	log.WithField("to", to).Debug("Mail relay not configured, skipping welcome email")
	logFollowUp(to)
	return integrations.ErrDisabled
}
