package dto

import "time"

type CreateInvestmentRequestDTO struct {
	ProjectID     string  `json:"project_id" validate:"required" example:"7f3e8c1a-1d2b-4c59-9f0e-6a8b51c0d1e2"`
	Amount        float64 `json:"amount" validate:"required,gt=0" example:"100"`
	PaymentMethod string  `json:"payment_method" validate:"required" example:"balance"`
	HasInsurance  bool    `json:"has_insurance" example:"false"`
	// ProviderOrderID carries the captured PayPal order id when payment_method is paypal.
	ProviderOrderID string `json:"provider_order_id,omitempty"`
}

type InvestmentResponseDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ProjectID     string    `json:"project_id"`
	Amount        float64   `json:"amount" example:"100"`
	InsuranceFee  float64   `json:"insurance_fee" example:"5"`
	PaymentMethod string    `json:"payment_method" example:"balance"`
	Status        string    `json:"status" example:"completed"`
	IsCancelled   bool      `json:"is_cancelled"`
	CreatedAt     time.Time `json:"created_at"`
}

// CheckoutResponseDTO is returned for card investments: the client redirects
// to the hosted checkout page.
type CheckoutResponseDTO struct {
	InvestmentID string `json:"investment_id"`
	URL          string `json:"url"`
}

type WithdrawalRequestDTO struct {
	Amount           float64 `json:"amount" validate:"required,gt=0" example:"20"`
	WithdrawalMethod string  `json:"withdrawal_method" validate:"required" example:"bank_transfer"`
	IBAN             string  `json:"iban,omitempty" example:"FR7630006000011234567890189"`
	PhoneNumber      string  `json:"phone_number,omitempty" example:"+33612345678"`
}

type WithdrawalResponseDTO struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Amount           float64   `json:"amount" example:"20"`
	Fees             float64   `json:"fees" example:"0.5"`
	NetAmount        float64   `json:"net_amount" example:"19.5"`
	WithdrawalMethod string    `json:"withdrawal_method" example:"bank_transfer"`
	Status           string    `json:"status" example:"pending"`
	IsCancelled      bool      `json:"is_cancelled"`
	CreatedAt        time.Time `json:"created_at"`
}
