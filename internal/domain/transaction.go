package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusApproved TransactionStatus = "approved"
	StatusDeclined TransactionStatus = "declined"
	StatusError    TransactionStatus = "error"
)

func (s TransactionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusDeclined || s == StatusError
}

func (s TransactionStatus) String() string {
	return string(s)
}

type Currency string

const (
	CurrencyCOP Currency = "COP"
	CurrencyUSD Currency = "USD"
)

// CardDetails holds the raw card data exactly as submitted. Storing PAN
// fragments and the CVS in clear is inherited from the system this service
// replaces; everything touching these fields stays inside this struct so a
// tokenizing gateway can replace it without hunting through the codebase.
type CardDetails struct {
	PAN1   string `json:"-"`
	PAN2   string `json:"-"`
	PAN3   string `json:"-"`
	PAN4   string `json:"-"`
	CVS    string `json:"-"`
	ExpM   string `json:"exp_m"`
	ExpY   string `json:"exp_y"`
	Holder string `json:"holder"`
	Last4  string `json:"last4"`
	Brand  string `json:"brand,omitempty"`
}

type BillingAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Department string `json:"department"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Transaction is created in pending state by the processor and moved to a
// terminal status exactly once. Rows are never mutated after that, except the
// reconciliation worker resolving stuck pending rows to a terminal status.
type Transaction struct {
	ID             uuid.UUID           `json:"id"`
	ItemID         int                 `json:"item_id"`
	Quantity       int                 `json:"quantity"`
	Currency       Currency            `json:"currency"`
	Card           CardDetails         `json:"card"`
	Billing        BillingAddress      `json:"billing"`
	UserIP         string              `json:"user_ip,omitempty"`
	ExternalID     string              `json:"external_id,omitempty"`
	IdempotencyKey string              `json:"idempotency_key,omitempty"`
	Status         TransactionStatus   `json:"status"`
	Amount         decimal.Decimal     `json:"amount"`
	TotalPaid      decimal.NullDecimal `json:"total_paid"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// TransactionEvent is the audit record published after every settlement
// attempt, approved or not. It carries no card data.
type TransactionEvent struct {
	ID        uuid.UUID           `json:"id"`
	ItemID    int                 `json:"item_id"`
	Status    TransactionStatus   `json:"status"`
	Currency  Currency            `json:"currency"`
	TotalPaid decimal.NullDecimal `json:"total_paid"`
	CreatedAt time.Time           `json:"created_at"`
}
