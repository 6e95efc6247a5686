// Package mailgateway sends transactional email through a pluggable gateway.
package mailgateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/hackbits-tech/hackbits-backend/internal/config"
)

// Gateway represents an outbound email gateway
type Gateway interface {
	Send(to, subject, body string) (string, error)
}

// HTTPGateway sends mail through a JSON HTTP mail API
type HTTPGateway struct {
	BaseURL    string
	APIKey     string
	Sender     string
	httpClient *http.Client
}

// MockGateway logs mail instead of sending it, for development and tests
type MockGateway struct {
	Sender string
}

// NewGateway returns the configured gateway, or the mock when MockMail is set
func NewGateway(cfg *config.Config) Gateway {
	if cfg.Mail.MockMail {
		return &MockGateway{Sender: cfg.Mail.Sender}
	}
	return &HTTPGateway{
		BaseURL: cfg.Mail.BaseURL,
		APIKey:  cfg.Mail.APIKey,
		Sender:  cfg.Mail.Sender,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send sends an email through the HTTP mail API
func (g *HTTPGateway) Send(to, subject, body string) (string, error) {
	requestBody := map[string]interface{}{
		"from":    g.Sender,
		"to":      to,
		"subject": subject,
		"body":    body,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/messages", g.BaseURL), bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.APIKey))

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var response struct {
		MessageID string `json:"messageId"`
	}
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return response.MessageID, nil
}

// Send logs the email and returns a fabricated message id
func (g *MockGateway) Send(to, subject, body string) (string, error) {
	msgID := fmt.Sprintf("MOCK-MAIL-%d", time.Now().UnixNano())
	log.Printf("[Mock Mail Gateway] %s -> %s: %s (%s)", g.Sender, to, subject, msgID)
	return msgID, nil
}
