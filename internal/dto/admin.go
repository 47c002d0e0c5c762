package dto

import "time"

type AdminUserResponseDTO struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Address          string    `json:"address"`
	Phone            string    `json:"phone"`
	IsAdmin          bool      `json:"is_admin"`
	AvailableBalance float64   `json:"available_balance"`
	InvestedAmount   float64   `json:"invested_amount"`
	CreatedAt        time.Time `json:"created_at"`
}

type UpdateUserRequestDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"is_admin"`
}

// AdjustmentRequestDTO credits (positive) or debits (negative) a user's
// available balance.
type AdjustmentRequestDTO struct {
	UserID string  `json:"user_id" validate:"required"`
	Amount float64 `json:"amount" validate:"required" example:"100"`
}

// AdminInvestmentRequestDTO records a cash or manual investment on behalf of
// a user.
type AdminInvestmentRequestDTO struct {
	UserID        string  `json:"user_id" validate:"required"`
	ProjectID     string  `json:"project_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" example:"cash"`
}

type EmailRequestDTO struct {
	Subject      string   `json:"subject" validate:"required"`
	Content      string   `json:"content" validate:"required"`
	RecipientIDs []string `json:"recipient_ids,omitempty"`
	All          bool     `json:"all,omitempty"`
}

type EmailSummaryResponseDTO struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
