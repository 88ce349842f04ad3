package categoryService

import (
	"FinanceTracker/internal/api/category"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICategoryService interface {
	GetAll(ctx context.Context) ([]category.CategoryResponse, error)
	GetByType(ctx context.Context, categoryType entity.CategoryType) ([]category.CategoryResponse, error)
	Create(ctx context.Context, req category.CreateCategoryRequest) (category.CategoryResponse, error)
	Update(ctx context.Context, id string, req category.UpdateCategoryRequest) (category.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	log                *logrus.Logger
	categoryRepository categoryRepository.Repository
	utils              utils.IUtils
}

func NewCategoryService(log *logrus.Logger, cr categoryRepository.Repository, utils utils.IUtils) ICategoryService {
	return &categoryService{
		log:                log,
		categoryRepository: cr,
		utils:              utils,
	}
}
