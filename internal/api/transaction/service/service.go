package transactionService

import (
	"time"

	authRepository "FinanceTracker/internal/api/auth/repository"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	"FinanceTracker/internal/api/transaction"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	GetByUser(ctx context.Context, userID string) ([]transaction.TransactionResponse, error)
	GetByUserAndCategory(ctx context.Context, userID string, categoryID string) ([]transaction.TransactionResponse, error)
	GetByUserAndDateRange(ctx context.Context, userID string, start time.Time, end time.Time) ([]transaction.TransactionResponse, error)
	Create(ctx context.Context, req transaction.CreateTransactionRequest, date time.Time) (transaction.TransactionResponse, error)
	Update(ctx context.Context, id string, req transaction.UpdateTransactionRequest, date time.Time) (transaction.TransactionResponse, error)
	Delete(ctx context.Context, id string, userID string) error
	SumByDateRange(ctx context.Context, userID string, start time.Time, end time.Time) (transaction.SummaryResponse, error)
	SumByCategoryAndDateRange(ctx context.Context, userID string, categoryID string, start time.Time, end time.Time) (transaction.SummaryResponse, error)
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	authRepository        authRepository.Repository
	categoryRepository    categoryRepository.Repository
	utils                 utils.IUtils
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository, ar authRepository.Repository, cr categoryRepository.Repository, utils utils.IUtils) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		authRepository:        ar,
		categoryRepository:    cr,
		utils:                 utils,
	}
}
