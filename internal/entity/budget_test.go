package entity

import (
	"testing"

	"FinanceTracker/internal/api/budget"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudgetValidate(t *testing.T) {
	tests := []struct {
		name    string
		limit   decimal.Decimal
		wantErr error
	}{
		{name: "limit of 100 is valid", limit: decimal.NewFromInt(100), wantErr: nil},
		{name: "limit of 0.01 is valid", limit: decimal.NewFromFloat(0.01), wantErr: nil},
		{name: "zero limit is rejected", limit: decimal.Zero, wantErr: budget.ErrInvalidMonthlyLimit},
		{name: "negative limit is rejected", limit: decimal.NewFromInt(-5), wantErr: budget.ErrInvalidMonthlyLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Budget{MonthlyLimit: tt.limit}
			err := b.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
