package entity

import (
	"strings"
	"time"
)

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// ParseCategoryType normalizes the raw value and reports whether it names one
// of the two category kinds.
func ParseCategoryType(raw string) (CategoryType, bool) {
	switch CategoryType(strings.ToUpper(strings.TrimSpace(raw))) {
	case CategoryTypeIncome:
		return CategoryTypeIncome, true
	case CategoryTypeExpense:
		return CategoryTypeExpense, true
	default:
		return "", false
	}
}

// Kind is the read-time projection of a category type onto transactions:
// "income" for INCOME categories, "expense" otherwise. Never persisted.
func (t CategoryType) Kind() string {
	if t == CategoryTypeIncome {
		return "income"
	}
	return "expense"
}

type Category struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	Type      CategoryType `db:"type"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}
