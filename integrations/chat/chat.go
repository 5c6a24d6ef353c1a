package chat

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
)

const (
	promptTemplate = "You are a helpful sales assistant for Leadsplatter, a B2B lead generation tool. Answer the user clearly and concisely.\nUser: %s\nAssistant:"

	maxNewTokens = 150
	temperature  = 0.7

	// FallbackReply is returned when the model produced no text
	FallbackReply = "I couldn't generate a response."
)

// ErrModelLoading is returned while the hosted model is still warming up.
// Callers should ask the user to retry later.
var ErrModelLoading = errors.New("chat: model is loading")

// Relay forwards a user message to a hosted model and returns its reply
type Relay interface {
	Reply(ctx context.Context, message string) (string, error)
}

// Config holds the inference endpoint settings
type Config struct {
	Token    string
	ModelURL string
	Timeout  time.Duration
}

// New creates a Hugging Face relay. The token is optional; the inference API
// accepts anonymous calls at a lower rate limit.
func New(cfg Config) *HuggingFaceRelay {
	return NewHuggingFaceRelay(cfg.ModelURL, integrations.NewHTTPClient(cfg.Token, cfg.Timeout))
}

// HuggingFaceRelay calls the Hugging Face text-generation inference API
type HuggingFaceRelay struct {
	modelURL   string
	httpClient *http.Client
}

// NewHuggingFaceRelay creates a relay for the given model endpoint
func NewHuggingFaceRelay(modelURL string, httpClient *http.Client) *HuggingFaceRelay {
	return &HuggingFaceRelay{
		modelURL:   modelURL,
		httpClient: httpClient,
	}
}

type generationParameters struct {
	ReturnFullText bool    `json:"return_full_text"`
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
}

// upstreamError is the error body of the inference API. The error field is
// usually a string but some deployments return a list.
type upstreamError struct {
	Error         json.RawMessage `json:"error"`
	EstimatedTime float64         `json:"estimated_time,omitempty"`
}

// BuildPrompt wraps the user message in the fixed instruction template
func BuildPrompt(message string) string {
	return fmt.Sprintf(promptTemplate, message)
}

// Reply sends one generation request. No conversation state is kept.
func (c *HuggingFaceRelay) Reply(ctx context.Context, message string) (string, error) {
	body := generationRequest{
		Inputs: BuildPrompt(message),
		Parameters: generationParameters{
			ReturnFullText: false,
			MaxNewTokens:   maxNewTokens,
			Temperature:    temperature,
		},
	}

	payloadBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL, bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", classifyError(resp.StatusCode, bodyBytes)
	}

	var generations []generation
	if err := json.Unmarshal(bodyBytes, &generations); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(generations) == 0 || strings.TrimSpace(generations[0].GeneratedText) == "" {
		return FallbackReply, nil
	}
	return strings.TrimSpace(generations[0].GeneratedText), nil
}

func classifyError(status int, body []byte) error {
	message := strings.TrimSpace(string(body))

	var upstream upstreamError
	if err := json.Unmarshal(body, &upstream); err == nil && len(upstream.Error) > 0 {
		var text string
		if err := json.Unmarshal(upstream.Error, &text); err == nil {
			message = text
		} else {
			message = string(upstream.Error)
		}
	}

	if strings.Contains(strings.ToLower(message), "loading") {
		return fmt.Errorf("%w: %s", ErrModelLoading, message)
	}
	return fmt.Errorf("unexpected status code %d: %s", status, message)
}
