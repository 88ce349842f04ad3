package categoryService

import (
	"time"

	"FinanceTracker/internal/api/category"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *categoryService) GetAll(ctx context.Context) ([]category.CategoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	categories, err := repo.Categories.GetAll(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, err
	}

	return makeCategoryResponses(categories), nil
}

func (s *categoryService) GetByType(ctx context.Context, categoryType entity.CategoryType) ([]category.CategoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	categories, err := repo.Categories.GetByType(ctx, categoryType)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       string(categoryType),
			"error":      err.Error(),
		}).Error("Failed to get categories by type")
		return nil, err
	}

	return makeCategoryResponses(categories), nil
}

func (s *categoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return category.CategoryResponse{}, err
	}

	categoryType, ok := entity.ParseCategoryType(req.Type)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
		}).Warn("Invalid category type")
		return category.CategoryResponse{}, category.ErrInvalidType
	}

	exists, err := repo.Categories.ExistsByName(ctx, req.Name)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check category name existence")
		return category.CategoryResponse{}, err
	}

	if exists {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"name":       req.Name,
		}).Warn("Category name already taken")
		return category.CategoryResponse{}, category.ErrCategoryNameExists
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return category.CategoryResponse{}, err
	}

	cat := entity.Category{
		ID:        ULID,
		Name:      req.Name,
		Type:      categoryType,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := repo.Categories.CreateCategory(ctx, cat); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create category")
		return category.CategoryResponse{}, err
	}

	return makeCategoryResponse(cat), nil
}

func (s *categoryService) Update(ctx context.Context, id string, req category.UpdateCategoryRequest) (category.CategoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return category.CategoryResponse{}, err
	}

	categoryType, ok := entity.ParseCategoryType(req.Type)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       req.Type,
		}).Warn("Invalid category type")
		return category.CategoryResponse{}, category.ErrInvalidType
	}

	existing, err := repo.Categories.GetByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get existing category")
		return category.CategoryResponse{}, err
	}

	if req.Name != existing.Name {
		exists, err := repo.Categories.ExistsByName(ctx, req.Name)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to check category name existence")
			return category.CategoryResponse{}, err
		}

		if exists {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"name":       req.Name,
			}).Warn("Category name already taken")
			return category.CategoryResponse{}, category.ErrCategoryNameExists
		}
	}

	existing.Name = req.Name
	existing.Type = categoryType
	existing.UpdatedAt = time.Now()

	if err := repo.Categories.UpdateCategory(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update category")
		return category.CategoryResponse{}, err
	}

	return makeCategoryResponse(existing), nil
}

// Delete removes the category row only. Transactions and budgets that still
// reference it keep their category id and resolve to an empty projection.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Categories.DeleteCategory(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete category")
		return err
	}

	return nil
}

func makeCategoryResponse(cat entity.Category) category.CategoryResponse {
	return category.CategoryResponse{
		ID:   cat.ID,
		Name: cat.Name,
		Type: string(cat.Type),
	}
}

func makeCategoryResponses(categories []entity.Category) []category.CategoryResponse {
	result := make([]category.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		result = append(result, makeCategoryResponse(cat))
	}

	return result
}
