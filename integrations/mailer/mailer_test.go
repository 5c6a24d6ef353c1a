package mailer

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/blogem/leadsplatter/integrations"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsVariant(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want integrations.Mode
	}{
		{name: "nothing configured", cfg: Config{}, want: integrations.ModeDisabled},
		{name: "host without credential", cfg: Config{Host: "smtp.example.com", Port: 587}, want: integrations.ModeDisabled},
		{name: "credential without host", cfg: Config{Password: "secret"}, want: integrations.ModeDisabled},
		{name: "host and credential", cfg: Config{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", From: "hello@leadsplatter.test"}, want: integrations.ModeLive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.cfg).Mode())
		})
	}
}

func TestDisabledSender_NoOp(t *testing.T) {
	err := New(Config{}).SendWelcome(context.Background(), "jane@acme.test", "Acme")
	assert.ErrorIs(t, err, integrations.ErrDisabled)
}

func TestSendWelcome_QueuesFollowUp(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	_ = New(Config{}).SendWelcome(context.Background(), "jane@acme.test", "Acme")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Follow-up email queued", entry.Message)
	assert.Equal(t, "jane@acme.test", entry.Data["to"])
	assert.Equal(t, "Case Studies", entry.Data["subject"])
	assert.Equal(t, "72h0m0s", entry.Data["delay"])
}

func TestComposeWelcome(t *testing.T) {
	msg, err := ComposeWelcome("hello@leadsplatter.test", "jane@acme.test", "Acme")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()

	assert.Contains(t, raw, "hello@leadsplatter.test")
	assert.Contains(t, raw, "jane@acme.test")
	assert.Contains(t, raw, "Subject:")
	assert.Contains(t, raw, "Hi Acme,")
	assert.Contains(t, raw, "free guide to AI Lead Gen")
}

func TestComposeWelcome_DefaultName(t *testing.T) {
	msg, err := ComposeWelcome("hello@leadsplatter.test", "jane@acme.test", "")
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Hi there,")
}

func TestComposeWelcome_InvalidRecipient(t *testing.T) {
	_, err := ComposeWelcome("hello@leadsplatter.test", "not an address", "Acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recipient address")
}

func TestSMTPSender_UnreachableRelay(t *testing.T) {
	sender := New(Config{
		Host:     "127.0.0.1",
		Port:     1,
		Username: "u",
		Password: "p",
		From:     "hello@leadsplatter.test",
		Timeout:  time.Second,
	})

	err := sender.SendWelcome(context.Background(), "jane@acme.test", "Acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send welcome email")
}
