package transactionService

import (
	"time"

	"FinanceTracker/internal/api/transaction"
	contextPkg "FinanceTracker/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// SumByDateRange totals all of a user's transactions in the inclusive date
// range. An empty range yields a zero total, not an error.
func (s *transactionService) SumByDateRange(ctx context.Context, userID string, start time.Time, end time.Time) (transaction.SummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return transaction.SummaryResponse{}, err
	}

	if _, err := s.resolveUser(ctx, requestID, userID); err != nil {
		return transaction.SummaryResponse{}, err
	}

	total, err := repo.Transactions.SumByUserAndDateRange(ctx, userID, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to sum transactions by date range")
		return transaction.SummaryResponse{}, err
	}

	return transaction.SummaryResponse{Total: total}, nil
}

func (s *transactionService) SumByCategoryAndDateRange(ctx context.Context, userID string, categoryID string, start time.Time, end time.Time) (transaction.SummaryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return transaction.SummaryResponse{}, err
	}

	if _, err := s.resolveUser(ctx, requestID, userID); err != nil {
		return transaction.SummaryResponse{}, err
	}

	if _, err := s.resolveCategory(ctx, requestID, categoryID); err != nil {
		return transaction.SummaryResponse{}, err
	}

	total, err := repo.Transactions.SumByUserAndCategoryAndDateRange(ctx, userID, categoryID, start, end)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"user_id":     userID,
			"category_id": categoryID,
			"error":       err.Error(),
		}).Error("Failed to sum transactions by category and date range")
		return transaction.SummaryResponse{}, err
	}

	return transaction.SummaryResponse{Total: total}, nil
}
