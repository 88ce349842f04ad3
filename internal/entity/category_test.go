package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategoryType(t *testing.T) {
	tests := []struct {
		raw      string
		expected CategoryType
		ok       bool
	}{
		{raw: "INCOME", expected: CategoryTypeIncome, ok: true},
		{raw: "EXPENSE", expected: CategoryTypeExpense, ok: true},
		{raw: "income", expected: CategoryTypeIncome, ok: true},
		{raw: " expense ", expected: CategoryTypeExpense, ok: true},
		{raw: "SAVINGS", ok: false},
		{raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseCategoryType(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCategoryTypeKind(t *testing.T) {
	assert.Equal(t, "income", CategoryTypeIncome.Kind())
	assert.Equal(t, "expense", CategoryTypeExpense.Kind())
	assert.Equal(t, "expense", CategoryType("").Kind())
}
