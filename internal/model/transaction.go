package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single statement line from any source. Positive amounts
// are money spent, negative amounts are money received.
type Transaction struct {
	Date     time.Time       `json:"date"`
	Title    string          `json:"title"` // Raw description as exported by the bank
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category,omitempty"`
	Hash     string          `json:"-"`

	// Optional metadata that may be available depending on source
	RawDate   string `json:"-"` // Date text when it could not be parsed
	AccountID string `json:"-"`
	Type      string `json:"-"` // OFX transaction type (e.g., DEBIT, ATM, FEE)
}

// Text returns the description used for classification.
func (t Transaction) Text() string {
	return t.Title
}

// IsSpend reports whether the transaction took money out of the account.
func (t Transaction) IsSpend() bool {
	return t.Amount.IsPositive()
}

// DateString renders the date the way statements show it.
func (t Transaction) DateString() string {
	if t.Date.IsZero() {
		return t.RawDate
	}
	return t.Date.Format("2006-01-02")
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%s",
		t.DateString(),
		t.Amount.StringFixed(2),
		t.Title,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
