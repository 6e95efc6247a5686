// Package payment wraps the payment provider behind a narrow capability so
// the registration flow never depends on a specific vendor SDK shape.
package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hackbits-tech/hackbits-backend/internal/config"
)

// Order is a payment order created at the provider
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Provider creates payment orders for registration fees
type Provider interface {
	Initiate(amount int64, currency, receipt string) (*Order, error)
}

// RazorpayProvider talks to the Razorpay orders API
type RazorpayProvider struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	client    *http.Client
}

// MockProvider simulates the provider for local development and tests
type MockProvider struct{}

// NewProvider returns the configured provider, or the mock when MockAPI is set
func NewProvider(cfg *config.Config) Provider {
	if cfg.Payment.Provider.MockAPI {
		return &MockProvider{}
	}
	return &RazorpayProvider{
		BaseURL:   cfg.Payment.Provider.BaseURL,
		KeyID:     cfg.Payment.Provider.KeyID,
		KeySecret: cfg.Payment.Provider.KeySecret,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Initiate creates an order at Razorpay
func (p *RazorpayProvider) Initiate(amount int64, currency, receipt string) (*Order, error) {
	requestBody := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/v1/orders", p.BaseURL), bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(p.KeyID, p.KeySecret)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &order, nil
}

// Initiate returns a fabricated order without contacting any provider
func (p *MockProvider) Initiate(amount int64, currency, receipt string) (*Order, error) {
	return &Order{
		ID:       fmt.Sprintf("order_MOCK%d", time.Now().UnixNano()),
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}
