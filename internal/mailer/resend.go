package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wearshop/investmart/internal/config"
	"github.com/wearshop/investmart/pkg/clients"
)

const bulkConcurrency = 5

// WithdrawalNotice carries everything the operator needs to execute a bank
// transfer by hand.
type WithdrawalNotice struct {
	FirstName string
	LastName  string
	Address   string
	Phone     string
	IBAN      string
	Amount    float64
	Fees      float64
	NetAmount float64
}

// Mailer sends transactional email through the Resend HTTP API.
type Mailer struct {
	apiURL   string
	apiKey   string
	from     string
	opsEmail string
	client   clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Mailer {
	return &Mailer{
		apiURL:   cfg.ResendAPIURL,
		apiKey:   cfg.ResendAPIKey,
		from:     cfg.MailFrom,
		opsEmail: cfg.OpsEmail,
		client:   client,
	}
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

func (m *Mailer) send(ctx context.Context, payload emailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("can't marshal email payload: %w", err)
	}

	h := http.Header{}
	h.Set("Authorization", "Bearer "+m.apiKey)
	h.Set("Content-Type", "application/json")

	statusCode, respBody, err := m.client.Post(ctx, m.apiURL+"/emails", h, string(body))
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("email request returned status %d: %s", statusCode, string(respBody))
	}
	return nil
}

// Send delivers one HTML email.
func (m *Mailer) Send(ctx context.Context, to, subject, html string) error {
	return m.send(ctx, emailPayload{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
}

// SendWithdrawalNotice mails the operator inbox the banking details and the
// computed net amount for a pending bank transfer.
func (m *Mailer) SendWithdrawalNotice(ctx context.Context, notice WithdrawalNotice) error {
	content := fmt.Sprintf(`Nouvelle demande de retrait par virement bancaire:

Prénom: %s
Nom: %s
Adresse: %s
Téléphone: %s
IBAN: %s
Montant demandé: %.2f€
Frais: %.2f€
Montant net: %.2f€
`, notice.FirstName, notice.LastName, notice.Address, notice.Phone, notice.IBAN,
		notice.Amount, notice.Fees, notice.NetAmount)

	return m.send(ctx, emailPayload{
		From:    m.from,
		To:      []string{m.opsEmail},
		Subject: fmt.Sprintf("Nouvelle demande de retrait - %s %s", notice.FirstName, notice.LastName),
		Text:    content,
	})
}

// SendBulk fans a campaign out to every recipient with bounded concurrency.
// Individual failures are logged and counted, not fatal.
func (m *Mailer) SendBulk(ctx context.Context, recipients []string, subject, html string) (sent int, failed int, err error) {
	results := make([]error, len(recipients))

	var g errgroup.Group
	g.SetLimit(bulkConcurrency)
	for i, to := range recipients {
		i, to := i, to
		g.Go(func() error {
			results[i] = m.Send(ctx, to, subject, html)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, len(recipients), err
	}

	for i, sendErr := range results {
		if sendErr != nil {
			failed++
			zap.L().Error("bulk email delivery failed",
				zap.String("recipient", recipients[i]), zap.Error(sendErr))
			continue
		}
		sent++
	}
	return sent, failed, nil
}
