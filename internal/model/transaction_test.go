package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_GenerateHash(t *testing.T) {
	base := Transaction{
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Title:     "Uber *Trip",
		Amount:    decimal.RequireFromString("23.90"),
		AccountID: "nubank",
	}

	same := base
	same.Amount = decimal.RequireFromString("23.9")
	assert.Equal(t, base.GenerateHash(), same.GenerateHash(), "amount scale must not change the hash")

	other := base
	other.Title = "Uber *Trip 2"
	assert.NotEqual(t, base.GenerateHash(), other.GenerateHash())

	assert.Len(t, base.GenerateHash(), 64)
}

func TestTransaction_Accessors(t *testing.T) {
	spend := Transaction{Title: "Padaria", Amount: decimal.RequireFromString("12.50")}
	refund := Transaction{Title: "Estorno", Amount: decimal.RequireFromString("-12.50"), RawDate: "31/02/2024"}

	assert.Equal(t, "Padaria", spend.Text())
	assert.True(t, spend.IsSpend())
	assert.False(t, refund.IsSpend())
	assert.False(t, Transaction{Amount: decimal.Zero}.IsSpend())

	assert.Equal(t, "31/02/2024", refund.DateString())
	spend.Date = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-02", spend.DateString())
}
