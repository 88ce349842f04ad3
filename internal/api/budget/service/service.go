package budgetService

import (
	authRepository "FinanceTracker/internal/api/auth/repository"
	"FinanceTracker/internal/api/budget"
	budgetRepository "FinanceTracker/internal/api/budget/repository"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IBudgetService interface {
	GetByUser(ctx context.Context, userID string, typeFilter *entity.CategoryType) ([]budget.BudgetResponse, error)
	Create(ctx context.Context, req budget.CreateBudgetRequest) (budget.BudgetResponse, error)
	Update(ctx context.Context, id string, req budget.UpdateBudgetRequest) (budget.BudgetResponse, error)
	Delete(ctx context.Context, id string, userID string) error
}

type budgetService struct {
	log                *logrus.Logger
	budgetRepository   budgetRepository.Repository
	authRepository     authRepository.Repository
	categoryRepository categoryRepository.Repository
	utils              utils.IUtils
}

func NewBudgetService(log *logrus.Logger, br budgetRepository.Repository, ar authRepository.Repository, cr categoryRepository.Repository, utils utils.IUtils) IBudgetService {
	return &budgetService{
		log:                log,
		budgetRepository:   br,
		authRepository:     ar,
		categoryRepository: cr,
		utils:              utils,
	}
}
