package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/wearshop/investmart/internal/config"
	"github.com/wearshop/investmart/pkg/clients"
)

// Checkout session states reported by Stripe.
const (
	SessionPaid     = "paid"
	SessionUnpaid   = "unpaid"
	SessionExpired  = "expired"
	SessionComplete = "complete"
)

var ErrSessionNotFound = errors.New("checkout session not found")

type CheckoutParams struct {
	InvestmentID uuid.UUID
	UserID       uuid.UUID
	ProjectID    uuid.UUID
	ProjectName  string
	Amount       float64 // principal
	HasInsurance bool
	Total        float64 // amount actually charged, fee included
}

type CheckoutSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// StripeClient talks to the Stripe Checkout Sessions API directly over HTTP.
type StripeClient struct {
	apiURL     string
	secretKey  string
	appBaseURL string
	client     clients.HTTPClientI
}

func NewStripeClient(cfg *config.Config, client clients.HTTPClientI) *StripeClient {
	return &StripeClient{
		apiURL:     cfg.StripeAPIURL,
		secretKey:  cfg.StripeSecretKey,
		appBaseURL: cfg.AppBaseURL,
		client:     client,
	}
}

func (s *StripeClient) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+s.secretKey)
	h.Set("Content-Type", "application/x-www-form-urlencoded")
	return h
}

// CreateCheckoutSession opens a hosted card checkout for the charged total and
// returns the redirect URL. The investment id travels in the session metadata
// so the reconciler can match the confirmation back to the pending row.
func (s *StripeClient) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	name := "Investissement - " + p.ProjectName
	if p.HasInsurance {
		name += " (avec assurance)"
	}

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", "eur")
	form.Set("line_items[0][price_data][product_data][name]", name)
	form.Set("line_items[0][price_data][unit_amount]", fmt.Sprintf("%d", int64(math.Round(p.Total*100))))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", s.appBaseURL+"/payment?success=true")
	form.Set("cancel_url", s.appBaseURL+"/payment?cancelled=true")
	form.Set("metadata[investment_id]", p.InvestmentID.String())
	form.Set("metadata[user_id]", p.UserID.String())
	form.Set("metadata[project_id]", p.ProjectID.String())
	form.Set("metadata[amount]", fmt.Sprintf("%.2f", p.Total))
	form.Set("metadata[investment_amount]", fmt.Sprintf("%.2f", p.Amount))
	form.Set("metadata[has_insurance]", fmt.Sprintf("%t", p.HasInsurance))

	statusCode, respBody, err := s.client.Post(ctx, s.apiURL+"/v1/checkout/sessions", s.headers(), form.Encode())
	if err != nil {
		return nil, fmt.Errorf("stripe session request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe session request returned status %d", statusCode)
	}

	var session CheckoutSession
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, fmt.Errorf("failed to parse stripe session: %w", err)
	}
	return &session, nil
}

// GetCheckoutSession fetches the server-side state of a session. Only a
// payment_status of "paid" here completes an investment; the browser redirect
// is never trusted.
func (s *StripeClient) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	statusCode, respBody, _, err := s.client.Get(ctx, s.apiURL+"/v1/checkout/sessions/"+sessionID, s.headers())
	if err != nil {
		return nil, fmt.Errorf("stripe session lookup failed: %w", err)
	}
	if statusCode == http.StatusNotFound {
		return nil, ErrSessionNotFound
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe session lookup returned status %d", statusCode)
	}

	var session CheckoutSession
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, fmt.Errorf("failed to parse stripe session: %w", err)
	}
	return &session, nil
}
