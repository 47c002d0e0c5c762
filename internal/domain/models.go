package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProjectStatusUpcoming   string = "upcoming"
	ProjectStatusCollecting string = "collecting"
	ProjectStatusCompleted  string = "completed"
	ProjectStatusPaid       string = "paid"
)

const (
	TransactionStatusPending   string = "pending"
	TransactionStatusCompleted string = "completed"
	TransactionStatusCancelled string = "cancelled"
)

const (
	PaymentMethodCard    string = "card"
	PaymentMethodPayPal  string = "paypal"
	PaymentMethodBalance string = "balance"
	PaymentMethodCash    string = "cash"
	PaymentMethodAdmin   string = "admin"
)

const (
	WithdrawalMethodBankTransfer string = "bank_transfer"
	WithdrawalMethodCash         string = "cash"
	WithdrawalMethodPayPal       string = "paypal"
)

// InsuranceFee is the flat surcharge for capital-protection cover on an investment.
const InsuranceFee = 5.0

// BankTransferFee and BankTransferMinimum apply to bank_transfer withdrawals only.
const (
	BankTransferFee     = 0.5
	BankTransferMinimum = 9.5
)

type Profile struct {
	ID               uuid.UUID `db:"id"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	Address          string    `db:"address"`
	Phone            string    `db:"phone"`
	IsAdmin          bool      `db:"is_admin"`
	AvailableBalance float64   `db:"available_balance"`
	InvestedAmount   float64   `db:"invested_amount"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type Project struct {
	ID                  uuid.UUID  `db:"id"`
	Name                string     `db:"name"`
	ShortDescription    string     `db:"short_description"`
	DetailedDescription string     `db:"detailed_description"`
	Location            string     `db:"location"`
	Category            string     `db:"category"`
	ImageURL            string     `db:"image_url"`
	TargetAmount        float64    `db:"target_amount"`
	CollectedAmount     float64    `db:"collected_amount"`
	MinAmount           float64    `db:"min_amount"`
	ReturnRate          float64    `db:"return_rate"`
	Status              string     `db:"status"`
	IsActive            bool       `db:"is_active"`
	ImplementationDate  *time.Time `db:"implementation_date"`
	EndDate             *time.Time `db:"end_date"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

// Investment records the ledger effects applied at creation time
// (BalanceDebited, InvestedCredited) so that cancellation can apply the exact
// inverse without re-deriving it from the payment method.
type Investment struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	ProjectID        uuid.UUID `db:"project_id"`
	Amount           float64   `db:"amount"`
	InsuranceFee     float64   `db:"insurance_fee"`
	PaymentMethod    string    `db:"payment_method"`
	Status           string    `db:"status"`
	IsCancelled      bool      `db:"is_cancelled"`
	BalanceDebited   bool      `db:"balance_debited"`
	InvestedCredited bool      `db:"invested_credited"`
	ProviderRef      string    `db:"provider_ref"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Total is the amount actually charged: principal plus insurance fee.
func (i *Investment) Total() float64 {
	return i.Amount + i.InsuranceFee
}

type Withdrawal struct {
	ID               uuid.UUID  `db:"id"`
	UserID           uuid.UUID  `db:"user_id"`
	Amount           float64    `db:"amount"`
	Fees             float64    `db:"fees"`
	WithdrawalMethod string     `db:"withdrawal_method"`
	IBAN             string     `db:"iban"`
	PhoneNumber      string     `db:"phone_number"`
	Status           string     `db:"status"`
	IsCancelled      bool       `db:"is_cancelled"`
	NotifiedAt       *time.Time `db:"notified_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// NetAmount is what actually gets paid out: gross amount minus fees.
func (w *Withdrawal) NetAmount() float64 {
	return w.Amount - w.Fees
}

type NewsletterArticle struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Content     string     `db:"content"`
	IsPublished bool       `db:"is_published"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
