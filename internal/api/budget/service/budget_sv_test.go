package budgetService

import (
	"context"
	"io"
	"testing"

	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	"FinanceTracker/internal/api/budget"
	budgetRepository "FinanceTracker/internal/api/budget/repository"
	"FinanceTracker/internal/api/category"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBudgets struct {
	byID map[string]entity.Budget
}

func (f *fakeBudgets) CreateBudget(_ context.Context, b entity.Budget) error {
	for _, existing := range f.byID {
		if existing.UserID == b.UserID && existing.CategoryID == b.CategoryID {
			return budget.ErrBudgetAlreadyExists
		}
	}
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBudgets) GetByID(_ context.Context, id string) (entity.Budget, error) {
	b, ok := f.byID[id]
	if !ok {
		return entity.Budget{}, budget.ErrBudgetNotFound
	}
	return b, nil
}

func (f *fakeBudgets) GetByUserID(_ context.Context, userID string) ([]entity.Budget, error) {
	var result []entity.Budget
	for _, b := range f.byID {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBudgets) ExistsByUserAndCategory(_ context.Context, userID string, categoryID string) (bool, error) {
	for _, b := range f.byID {
		if b.UserID == userID && b.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBudgets) UpdateBudget(_ context.Context, b entity.Budget) error {
	if _, ok := f.byID[b.ID]; !ok {
		return budget.ErrBudgetNotFound
	}
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBudgets) DeleteBudget(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return budget.ErrBudgetNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeBudgetRepository struct {
	budgets *fakeBudgets
}

func (f *fakeBudgetRepository) NewClient(_ bool) (budgetRepository.Client, error) {
	return budgetRepository.Client{
		Budgets:  f.budgets,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeUsers struct {
	byID map[string]entity.User
}

func (f *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (entity.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (entity.User, error) {
	for _, user := range f.byID {
		if user.Username == username {
			return user, nil
		}
	}
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUsers) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, err := f.GetByUsername(context.Background(), username)
	return err == nil, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, user entity.User) error {
	f.byID[user.ID] = user
	return nil
}

type fakeAuthRepository struct {
	users *fakeUsers
}

func (f *fakeAuthRepository) NewClient(_ bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.users,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeCategories struct {
	byID map[string]entity.Category
}

func (f *fakeCategories) CreateCategory(_ context.Context, cat entity.Category) error {
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
	f.byID[cat.ID] = cat
	return nil
}

func (f *fakeCategories) DeleteCategory(_ context.Context, id string) error {
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

type fixture struct {
	svc        IBudgetService
	budgets    *fakeBudgets
	users      *fakeUsers
	categories *fakeCategories
}

func newFixture() *fixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	budgets := &fakeBudgets{byID: make(map[string]entity.Budget)}
	users := &fakeUsers{byID: make(map[string]entity.User)}
	categories := &fakeCategories{byID: make(map[string]entity.Category)}

	svc := NewBudgetService(
		logger,
		&fakeBudgetRepository{budgets: budgets},
		&fakeAuthRepository{users: users},
		&fakeCategoryRepository{categories: categories},
		utils.New(),
	)

	return &fixture{svc: svc, budgets: budgets, users: users, categories: categories}
}

func (f *fixture) seed() {
	f.users.byID["u1"] = entity.User{ID: "u1", Username: "alice"}
	f.users.byID["u2"] = entity.User{ID: "u2", Username: "bob"}
	f.categories.byID["c1"] = entity.Category{ID: "c1", Name: "Food", Type: entity.CategoryTypeExpense}
	f.categories.byID["c2"] = entity.Category{ID: "c2", Name: "Salary", Type: entity.CategoryTypeIncome}
}

func TestCreateBudget(t *testing.T) {
	f := newFixture()
	f.seed()

	limit := decimal.NewFromInt(100)
	created, err := f.svc.Create(context.Background(), budget.CreateBudgetRequest{
		UserID:       "u1",
		CategoryID:   "c1",
		MonthlyLimit: &limit,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "c1", created.CategoryID)
	assert.Equal(t, "Food", created.CategoryName)
	assert.True(t, created.MonthlyLimit.Equal(limit))
	assert.True(t, created.CurrentSpend.IsZero())
}

func TestCreateBudgetInvalidLimit(t *testing.T) {
	f := newFixture()
	f.seed()

	for _, limit := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		l := limit
		_, err := f.svc.Create(context.Background(), budget.CreateBudgetRequest{
			UserID:       "u1",
			CategoryID:   "c1",
			MonthlyLimit: &l,
		})
		assert.ErrorIs(t, err, budget.ErrInvalidMonthlyLimit)
	}
}

func TestCreateBudgetDuplicatePair(t *testing.T) {
	f := newFixture()
	f.seed()

	limit := decimal.NewFromInt(100)
	_, err := f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "u1", CategoryID: "c1", MonthlyLimit: &limit})
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "u1", CategoryID: "c1", MonthlyLimit: &limit})
	assert.ErrorIs(t, err, budget.ErrBudgetAlreadyExists)

	// Same category for a different user is fine.
	_, err = f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "u2", CategoryID: "c1", MonthlyLimit: &limit})
	assert.NoError(t, err)
}

func TestCreateBudgetUnknownReferences(t *testing.T) {
	f := newFixture()
	f.seed()

	limit := decimal.NewFromInt(100)

	_, err := f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "missing", CategoryID: "c1", MonthlyLimit: &limit})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	_, err = f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "u1", CategoryID: "missing", MonthlyLimit: &limit})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestUpdateBudgetOwnership(t *testing.T) {
	f := newFixture()
	f.seed()

	limit := decimal.NewFromInt(100)
	created, err := f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "u1", CategoryID: "c1", MonthlyLimit: &limit})
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), created.ID, budget.UpdateBudgetRequest{
		UserID:       "u2",
		CategoryID:   "c1",
		MonthlyLimit: &limit,
	})
	assert.ErrorIs(t, err, budget.ErrBudgetNotOwned)
}

func TestUpdateBudget(t *testing.T) {
	f := newFixture()
	f.seed()

	limit := decimal.NewFromInt(100)
	created, err := f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "u1", CategoryID: "c1", MonthlyLimit: &limit})
	require.NoError(t, err)

	newLimit := decimal.NewFromInt(250)
	updated, err := f.svc.Update(context.Background(), created.ID, budget.UpdateBudgetRequest{
		UserID:       "u1",
		CategoryID:   "c2",
		MonthlyLimit: &newLimit,
	})
	require.NoError(t, err)

	assert.Equal(t, "c2", updated.CategoryID)
	assert.Equal(t, "Salary", updated.CategoryName)
	assert.True(t, updated.MonthlyLimit.Equal(newLimit))

	t.Run("moving onto an existing pair conflicts", func(t *testing.T) {
		other, err := f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "u1", CategoryID: "c1", MonthlyLimit: &limit})
		require.NoError(t, err)

		_, err = f.svc.Update(context.Background(), other.ID, budget.UpdateBudgetRequest{
			UserID:       "u1",
			CategoryID:   "c2",
			MonthlyLimit: &limit,
		})
		assert.ErrorIs(t, err, budget.ErrBudgetAlreadyExists)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.svc.Update(context.Background(), "missing", budget.UpdateBudgetRequest{
			UserID:       "u1",
			CategoryID:   "c1",
			MonthlyLimit: &limit,
		})
		assert.ErrorIs(t, err, budget.ErrBudgetNotFound)
	})
}

func TestDeleteBudget(t *testing.T) {
	f := newFixture()
	f.seed()

	limit := decimal.NewFromInt(100)
	created, err := f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "u1", CategoryID: "c1", MonthlyLimit: &limit})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(context.Background(), created.ID, "u2"), budget.ErrBudgetNotOwned)
	require.NoError(t, f.svc.Delete(context.Background(), created.ID, "u1"))
	assert.ErrorIs(t, f.svc.Delete(context.Background(), created.ID, "u1"), budget.ErrBudgetNotFound)
}

func TestGetByUser(t *testing.T) {
	f := newFixture()
	f.seed()

	limit := decimal.NewFromInt(100)
	_, err := f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "u1", CategoryID: "c1", MonthlyLimit: &limit})
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), budget.CreateBudgetRequest{UserID: "u1", CategoryID: "c2", MonthlyLimit: &limit})
	require.NoError(t, err)

	all, err := f.svc.GetByUser(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, b := range all {
		assert.True(t, b.CurrentSpend.IsZero())
	}

	income := entity.CategoryTypeIncome
	filtered, err := f.svc.GetByUser(context.Background(), "u1", &income)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Salary", filtered[0].CategoryName)

	_, err = f.svc.GetByUser(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
