package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wearshop/investmart/internal/config"
	"github.com/wearshop/investmart/pkg/clients"
)

const OrderCompleted = "COMPLETED"

var ErrOrderNotFound = errors.New("paypal order not found")

type Order struct {
	ID       string
	Status   string
	Amount   float64
	Currency string
}

// PayPalClient verifies captured orders against the PayPal Orders API. The
// browser widget does the capture; nothing is credited until the order is
// confirmed COMPLETED server-side with a matching amount.
type PayPalClient struct {
	apiURL   string
	clientID string
	secret   string
	client   clients.HTTPClientI
}

func NewPayPalClient(cfg *config.Config, client clients.HTTPClientI) *PayPalClient {
	return &PayPalClient{
		apiURL:   cfg.PayPalAPIURL,
		clientID: cfg.PayPalClientID,
		secret:   cfg.PayPalSecret,
		client:   client,
	}
}

func (p *PayPalClient) accessToken(ctx context.Context) (string, error) {
	h := http.Header{}
	basic := base64.StdEncoding.EncodeToString([]byte(p.clientID + ":" + p.secret))
	h.Set("Authorization", "Basic "+basic)
	h.Set("Content-Type", "application/x-www-form-urlencoded")

	statusCode, respBody, err := p.client.Post(ctx, p.apiURL+"/v1/oauth2/token", h, "grant_type=client_credentials")
	if err != nil {
		return "", fmt.Errorf("paypal token request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token request returned status %d", statusCode)
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(respBody, &token); err != nil {
		return "", fmt.Errorf("failed to parse paypal token: %w", err)
	}
	if token.AccessToken == "" {
		return "", errors.New("empty paypal access token")
	}
	return token.AccessToken, nil
}

func (p *PayPalClient) VerifyOrder(ctx context.Context, orderID string) (*Order, error) {
	token, err := p.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)

	statusCode, respBody, _, err := p.client.Get(ctx, p.apiURL+"/v2/checkout/orders/"+orderID, h)
	if err != nil {
		return nil, fmt.Errorf("paypal order lookup failed: %w", err)
	}
	if statusCode == http.StatusNotFound {
		return nil, ErrOrderNotFound
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("paypal order lookup returned status %d", statusCode)
	}

	var resp struct {
		ID            string `json:"id"`
		Status        string `json:"status"`
		PurchaseUnits []struct {
			Amount struct {
				CurrencyCode string `json:"currency_code"`
				Value        string `json:"value"`
			} `json:"amount"`
		} `json:"purchase_units"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse paypal order: %w", err)
	}
	if len(resp.PurchaseUnits) == 0 {
		return nil, errors.New("paypal order has no purchase units")
	}

	amount, err := strconv.ParseFloat(resp.PurchaseUnits[0].Amount.Value, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse paypal order amount: %w", err)
	}

	return &Order{
		ID:       resp.ID,
		Status:   resp.Status,
		Amount:   amount,
		Currency: resp.PurchaseUnits[0].Amount.CurrencyCode,
	}, nil
}
