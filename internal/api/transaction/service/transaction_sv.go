package transactionService

import (
	"time"

	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/ownership"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const dateLayout = "2006-01-02"

func (s *transactionService) GetByUser(ctx context.Context, userID string) ([]transaction.TransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	if _, err := s.resolveUser(ctx, requestID, userID); err != nil {
		return nil, err
	}

	transactions, err := repo.Transactions.GetByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get transactions by user ID")
		return nil, err
	}

	return s.makeResponses(ctx, requestID, transactions)
}

func (s *transactionService) GetByUserAndCategory(ctx context.Context, userID string, categoryID string) ([]transaction.TransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	if _, err := s.resolveUser(ctx, requestID, userID); err != nil {
		return nil, err
	}

	if _, err := s.resolveCategory(ctx, requestID, categoryID); err != nil {
		return nil, err
	}

	transactions, err := repo.Transactions.GetByUserAndCategory(ctx, userID, categoryID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"user_id":     userID,
			"category_id": categoryID,
			"error":       err.Error(),
		}).Error("Failed to get transactions by category")
		return nil, err
	}

	return s.makeResponses(ctx, requestID, transactions)
}

func (s *transactionService) GetByUserAndDateRange(ctx context.Context, userID string, start time.Time, end time.Time) ([]transaction.TransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	if _, err := s.resolveUser(ctx, requestID, userID); err != nil {
		return nil, err
	}

	transactions, err := repo.Transactions.GetByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get transactions by date range")
		return nil, err
	}

	return s.makeResponses(ctx, requestID, transactions)
}

func (s *transactionService) Create(ctx context.Context, req transaction.CreateTransactionRequest, date time.Time) (transaction.TransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return transaction.TransactionResponse{}, err
	}

	if _, err := s.resolveUser(ctx, requestID, req.UserID); err != nil {
		return transaction.TransactionResponse{}, err
	}

	cat, err := s.resolveCategory(ctx, requestID, req.CategoryID)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return transaction.TransactionResponse{}, err
	}

	t := entity.Transaction{
		ID:         ULID,
		UserID:     req.UserID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount.Round(2),
		Date:       date,
		Note:       req.Note,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := t.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return transaction.TransactionResponse{}, err
	}

	if err := repo.Transactions.CreateTransaction(ctx, t); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return transaction.TransactionResponse{}, err
	}

	return makeTransactionResponse(t, cat), nil
}

func (s *transactionService) Update(ctx context.Context, id string, req transaction.UpdateTransactionRequest, date time.Time) (transaction.TransactionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return transaction.TransactionResponse{}, err
	}

	existing, err := repo.Transactions.GetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing transaction")
		return transaction.TransactionResponse{}, err
	}

	if !ownership.BelongsTo(&existing, req.UserID) {
		s.log.WithFields(logrus.Fields{
			"request_id":          requestID,
			"transaction_user_id": existing.UserID,
			"request_user_id":     req.UserID,
		}).Warn("Transaction does not belong to user")
		return transaction.TransactionResponse{}, transaction.ErrTransactionNotOwned
	}

	cat, err := s.resolveCategory(ctx, requestID, req.CategoryID)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	existing.CategoryID = req.CategoryID
	existing.Amount = req.Amount.Round(2)
	existing.Date = date
	existing.Note = req.Note
	existing.UpdatedAt = time.Now()

	if err := existing.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return transaction.TransactionResponse{}, err
	}

	if err := repo.Transactions.UpdateTransaction(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return transaction.TransactionResponse{}, err
	}

	return makeTransactionResponse(existing, cat), nil
}

func (s *transactionService) Delete(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Transactions.GetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing transaction")
		return err
	}

	if !ownership.BelongsTo(&existing, userID) {
		s.log.WithFields(logrus.Fields{
			"request_id":          requestID,
			"transaction_user_id": existing.UserID,
			"request_user_id":     userID,
		}).Warn("Transaction does not belong to user")
		return transaction.ErrTransactionNotOwned
	}

	if err := repo.Transactions.DeleteTransaction(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return err
	}

	return nil
}

func (s *transactionService) resolveUser(ctx context.Context, requestID string, userID string) (entity.User, error) {
	authRepo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create auth client")
		return entity.User{}, err
	}

	user, err := authRepo.Users.GetByID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Warn("Failed to resolve user")
		return entity.User{}, err
	}

	return user, nil
}

func (s *transactionService) resolveCategory(ctx context.Context, requestID string, categoryID string) (entity.Category, error) {
	categoryRepo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category client")
		return entity.Category{}, err
	}

	cat, err := categoryRepo.Categories.GetByID(ctx, categoryID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": categoryID,
			"error":       err.Error(),
		}).Warn("Failed to resolve category")
		return entity.Category{}, err
	}

	return cat, nil
}

func (s *transactionService) makeResponses(ctx context.Context, requestID string, transactions []entity.Transaction) ([]transaction.TransactionResponse, error) {
	categoryRepo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category client")
		return nil, err
	}

	categories, err := categoryRepo.Categories.GetAll(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, err
	}

	byID := make(map[string]entity.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	result := make([]transaction.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, makeTransactionResponse(t, byID[t.CategoryID]))
	}

	return result, nil
}

// makeTransactionResponse derives the read-time fields from the linked
// category. A deleted category projects to an empty name and the expense kind.
func makeTransactionResponse(t entity.Transaction, cat entity.Category) transaction.TransactionResponse {
	description := t.Note
	if description == "" {
		description = "Transaction"
	}

	return transaction.TransactionResponse{
		ID:          t.ID,
		Amount:      t.Amount,
		Date:        t.Date.Format(dateLayout),
		Note:        t.Note,
		CategoryID:  t.CategoryID,
		Category:    cat.Name,
		Type:        cat.Type.Kind(),
		Description: description,
	}
}
