package budgetService

import (
	"time"

	"FinanceTracker/internal/api/budget"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/ownership"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *budgetService) GetByUser(ctx context.Context, userID string, typeFilter *entity.CategoryType) ([]budget.BudgetResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
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

	budgets, err := repo.Budgets.GetByUserID(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get budgets by user ID")
		return nil, err
	}

	categoriesByID, err := s.categoriesByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	result := make([]budget.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		cat := categoriesByID[b.CategoryID]
		if typeFilter != nil && cat.Type != *typeFilter {
			continue
		}
		result = append(result, makeBudgetResponse(b, cat))
	}

	return result, nil
}

func (s *budgetService) Create(ctx context.Context, req budget.CreateBudgetRequest) (budget.BudgetResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return budget.BudgetResponse{}, err
	}

	if _, err := s.resolveUser(ctx, requestID, req.UserID); err != nil {
		return budget.BudgetResponse{}, err
	}

	cat, err := s.resolveCategory(ctx, requestID, req.CategoryID)
	if err != nil {
		return budget.BudgetResponse{}, err
	}

	exists, err := repo.Budgets.ExistsByUserAndCategory(ctx, req.UserID, req.CategoryID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check budget existence")
		return budget.BudgetResponse{}, err
	}

	if exists {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"user_id":     req.UserID,
			"category_id": req.CategoryID,
		}).Warn("Budget already exists for user and category")
		return budget.BudgetResponse{}, budget.ErrBudgetAlreadyExists
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return budget.BudgetResponse{}, err
	}

	b := entity.Budget{
		ID:           ULID,
		UserID:       req.UserID,
		CategoryID:   req.CategoryID,
		MonthlyLimit: *req.MonthlyLimit,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := b.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid budget data")
		return budget.BudgetResponse{}, err
	}

	if err := repo.Budgets.CreateBudget(ctx, b); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create budget")
		return budget.BudgetResponse{}, err
	}

	return makeBudgetResponse(b, cat), nil
}

func (s *budgetService) Update(ctx context.Context, id string, req budget.UpdateBudgetRequest) (budget.BudgetResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return budget.BudgetResponse{}, err
	}

	existing, err := repo.Budgets.GetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing budget")
		return budget.BudgetResponse{}, err
	}

	if !ownership.BelongsTo(&existing, req.UserID) {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"budget_user_id":  existing.UserID,
			"request_user_id": req.UserID,
		}).Warn("Budget does not belong to user")
		return budget.BudgetResponse{}, budget.ErrBudgetNotOwned
	}

	cat, err := s.resolveCategory(ctx, requestID, req.CategoryID)
	if err != nil {
		return budget.BudgetResponse{}, err
	}

	if req.CategoryID != existing.CategoryID {
		exists, err := repo.Budgets.ExistsByUserAndCategory(ctx, req.UserID, req.CategoryID)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to check budget existence")
			return budget.BudgetResponse{}, err
		}

		if exists {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"user_id":     req.UserID,
				"category_id": req.CategoryID,
			}).Warn("Budget already exists for user and category")
			return budget.BudgetResponse{}, budget.ErrBudgetAlreadyExists
		}
	}

	existing.CategoryID = req.CategoryID
	existing.MonthlyLimit = *req.MonthlyLimit
	existing.UpdatedAt = time.Now()

	if err := existing.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid budget data")
		return budget.BudgetResponse{}, err
	}

	if err := repo.Budgets.UpdateBudget(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update budget")
		return budget.BudgetResponse{}, err
	}

	return makeBudgetResponse(existing, cat), nil
}

func (s *budgetService) Delete(ctx context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.budgetRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	existing, err := repo.Budgets.GetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing budget")
		return err
	}

	if !ownership.BelongsTo(&existing, userID) {
		s.log.WithFields(logrus.Fields{
			"request_id":      requestID,
			"budget_user_id":  existing.UserID,
			"request_user_id": userID,
		}).Warn("Budget does not belong to user")
		return budget.ErrBudgetNotOwned
	}

	if err := repo.Budgets.DeleteBudget(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete budget")
		return err
	}

	return nil
}

func (s *budgetService) resolveUser(ctx context.Context, requestID string, userID string) (entity.User, error) {
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

func (s *budgetService) resolveCategory(ctx context.Context, requestID string, categoryID string) (entity.Category, error) {
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

func (s *budgetService) categoriesByID(ctx context.Context, requestID string) (map[string]entity.Category, error) {
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

	return byID, nil
}

func makeBudgetResponse(b entity.Budget, cat entity.Category) budget.BudgetResponse {
	return budget.BudgetResponse{
		ID:           b.ID,
		CategoryID:   b.CategoryID,
		CategoryName: cat.Name,
		MonthlyLimit: b.MonthlyLimit,
		CurrentSpend: decimal.Zero,
	}
}
