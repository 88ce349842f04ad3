package entity

import (
	"testing"
	"time"

	"FinanceTracker/internal/api/transaction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionValidate(t *testing.T) {
	date := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("positive amount is valid", func(t *testing.T) {
		tx := Transaction{Amount: decimal.NewFromFloat(12.50), Date: date}
		assert.NoError(t, tx.Validate())
	})

	t.Run("zero amount is valid", func(t *testing.T) {
		tx := Transaction{Amount: decimal.Zero, Date: date}
		assert.NoError(t, tx.Validate())
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		tx := Transaction{Amount: decimal.NewFromFloat(-0.01), Date: date}
		assert.ErrorIs(t, tx.Validate(), transaction.ErrNegativeAmount)
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		tx := Transaction{Amount: decimal.NewFromInt(10)}
		assert.ErrorIs(t, tx.Validate(), transaction.ErrMissingDate)
	})
}

func TestTransactionOwnerID(t *testing.T) {
	tx := Transaction{UserID: "user-1"}
	assert.Equal(t, "user-1", tx.OwnerID())
}
