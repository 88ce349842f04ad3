package categoryService

import (
	"context"
	"io"
	"testing"

	"FinanceTracker/internal/api/category"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategories struct {
	byID map[string]entity.Category
}

func newFakeCategories() *fakeCategories {
	return &fakeCategories{byID: make(map[string]entity.Category)}
}

func (f *fakeCategories) CreateCategory(_ context.Context, cat entity.Category) error {
	for _, existing := range f.byID {
		if existing.Name == cat.Name {
			return category.ErrCategoryNameExists
		}
	}
	f.byID[cat.ID] = cat
	return nil
}

func (f *fakeCategories) GetByID(_ context.Context, id string) (entity.Category, error) {
	cat, ok := f.byID[id]
	if !ok {
		return entity.Category{}, category.ErrCategoryNotFound
	}
	return cat, nil
}

func (f *fakeCategories) GetAll(_ context.Context) ([]entity.Category, error) {
	result := make([]entity.Category, 0, len(f.byID))
	for _, cat := range f.byID {
		result = append(result, cat)
	}
	return result, nil
}

func (f *fakeCategories) GetByType(_ context.Context, categoryType entity.CategoryType) ([]entity.Category, error) {
	var result []entity.Category
	for _, cat := range f.byID {
		if cat.Type == categoryType {
			result = append(result, cat)
		}
	}
	return result, nil
}

func (f *fakeCategories) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, cat := range f.byID {
		if cat.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategories) UpdateCategory(_ context.Context, cat entity.Category) error {
	if _, ok := f.byID[cat.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	f.byID[cat.ID] = cat
	return nil
}

func (f *fakeCategories) DeleteCategory(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeCategoryRepository struct {
	categories *fakeCategories
}

func (f *fakeCategoryRepository) NewClient(_ bool) (categoryRepository.Client, error) {
	return categoryRepository.Client{
		Categories: f.categories,
		Commit:     func() error { return nil },
		Rollback:   func() error { return nil },
	}, nil
}

func newTestService() (ICategoryService, *fakeCategories) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	categories := newFakeCategories()
	svc := NewCategoryService(logger, &fakeCategoryRepository{categories: categories}, utils.New())
	return svc, categories
}

func TestCreateCategory(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Food", Type: "EXPENSE"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Food", created.Name)
	assert.Equal(t, "EXPENSE", created.Type)
}

func TestCreateCategoryNormalizesType(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Salary", Type: "income"})
	require.NoError(t, err)
	assert.Equal(t, "INCOME", created.Type)
}

func TestCreateCategoryInvalidType(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Other", Type: "SAVINGS"})
	assert.ErrorIs(t, err, category.ErrInvalidType)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Food", Type: "EXPENSE"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Food", Type: "INCOME"})
	assert.ErrorIs(t, err, category.ErrCategoryNameExists)
}

func TestUpdateCategory(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Food", Type: "EXPENSE"})
	require.NoError(t, err)

	t.Run("keeping own name is not a conflict", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), created.ID, category.UpdateCategoryRequest{Name: "Food", Type: "INCOME"})
		require.NoError(t, err)
		assert.Equal(t, "INCOME", updated.Type)
	})

	t.Run("renaming onto another category conflicts", func(t *testing.T) {
		_, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Rent", Type: "EXPENSE"})
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), created.ID, category.UpdateCategoryRequest{Name: "Rent", Type: "EXPENSE"})
		assert.ErrorIs(t, err, category.ErrCategoryNameExists)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(context.Background(), "missing", category.UpdateCategoryRequest{Name: "X", Type: "EXPENSE"})
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestDeleteCategory(t *testing.T) {
	svc, categories := newTestService()

	created, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Food", Type: "EXPENSE"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, categories.byID)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), category.ErrCategoryNotFound)
}

func TestGetByType(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Food", Type: "EXPENSE"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Salary", Type: "INCOME"})
	require.NoError(t, err)

	income, err := svc.GetByType(context.Background(), entity.CategoryTypeIncome)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, "Salary", income[0].Name)
}
