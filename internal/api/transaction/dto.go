package transaction

import "github.com/shopspring/decimal"

type CreateTransactionRequest struct {
	UserID     string           `json:"userId" validate:"required"`
	CategoryID string           `json:"categoryId" validate:"required"`
	Amount     *decimal.Decimal `json:"amount" validate:"required"`
	Date       string           `json:"date" validate:"required"`
	Note       string           `json:"note"`
}

type UpdateTransactionRequest struct {
	UserID     string           `json:"userId" validate:"required"`
	CategoryID string           `json:"categoryId" validate:"required"`
	Amount     *decimal.Decimal `json:"amount" validate:"required"`
	Date       string           `json:"date" validate:"required"`
	Note       string           `json:"note"`
}

// TransactionResponse carries the stored fields plus the read-time
// projection: the linked category's name, the derived income/expense kind
// and the display description. None of the derived fields are persisted.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Note        string          `json:"note,omitempty"`
	CategoryID  string          `json:"categoryId"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
}

type SummaryResponse struct {
	Total decimal.Decimal `json:"total"`
}
