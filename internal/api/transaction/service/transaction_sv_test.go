package transactionService

import (
	"context"
	"io"
	"testing"
	"time"

	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	"FinanceTracker/internal/api/category"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	"FinanceTracker/internal/api/transaction"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransactions struct {
	byID map[string]entity.Transaction
}

func (f *fakeTransactions) CreateTransaction(_ context.Context, t entity.Transaction) error {
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTransactions) GetByID(_ context.Context, id string) (entity.Transaction, error) {
	t, ok := f.byID[id]
	if !ok {
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}
	return t, nil
}

func (f *fakeTransactions) GetByUserID(_ context.Context, userID string) ([]entity.Transaction, error) {
	var result []entity.Transaction
	for _, t := range f.byID {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTransactions) GetByUserAndCategory(_ context.Context, userID string, categoryID string) ([]entity.Transaction, error) {
	var result []entity.Transaction
	for _, t := range f.byID {
		if t.UserID == userID && t.CategoryID == categoryID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTransactions) GetByUserAndDateRange(_ context.Context, userID string, start time.Time, end time.Time) ([]entity.Transaction, error) {
	var result []entity.Transaction
	for _, t := range f.byID {
		if t.UserID == userID && !t.Date.Before(start) && !t.Date.After(end) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeTransactions) SumByUserAndDateRange(_ context.Context, userID string, start time.Time, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, t := range f.byID {
		if t.UserID == userID && !t.Date.Before(start) && !t.Date.After(end) {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

func (f *fakeTransactions) SumByUserAndCategoryAndDateRange(_ context.Context, userID string, categoryID string, start time.Time, end time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, t := range f.byID {
		if t.UserID == userID && t.CategoryID == categoryID && !t.Date.Before(start) && !t.Date.After(end) {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

func (f *fakeTransactions) UpdateTransaction(_ context.Context, t entity.Transaction) error {
	if _, ok := f.byID[t.ID]; !ok {
		return transaction.ErrTransactionNotFound
	}
	f.byID[t.ID] = t
	return nil
}

func (f *fakeTransactions) DeleteTransaction(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return transaction.ErrTransactionNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeTransactionRepository struct {
	transactions *fakeTransactions
}

func (f *fakeTransactionRepository) NewClient(_ bool) (transactionRepository.Client, error) {
	return transactionRepository.Client{
		Transactions: f.transactions,
		Commit:       func() error { return nil },
		Rollback:     func() error { return nil },
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
	svc          ITransactionService
	transactions *fakeTransactions
	users        *fakeUsers
	categories   *fakeCategories
}

func newFixture() *fixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	transactions := &fakeTransactions{byID: make(map[string]entity.Transaction)}
	users := &fakeUsers{byID: make(map[string]entity.User)}
	categories := &fakeCategories{byID: make(map[string]entity.Category)}

	svc := NewTransactionService(
		logger,
		&fakeTransactionRepository{transactions: transactions},
		&fakeAuthRepository{users: users},
		&fakeCategoryRepository{categories: categories},
		utils.New(),
	)

	return &fixture{svc: svc, transactions: transactions, users: users, categories: categories}
}

func (f *fixture) seed() {
	f.users.byID["u1"] = entity.User{ID: "u1", Username: "alice"}
	f.users.byID["u2"] = entity.User{ID: "u2", Username: "bob"}
	f.categories.byID["c1"] = entity.Category{ID: "c1", Name: "Food", Type: entity.CategoryTypeExpense}
	f.categories.byID["c2"] = entity.Category{ID: "c2", Name: "Salary", Type: entity.CategoryTypeIncome}
}

func date(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateTransactionProjection(t *testing.T) {
	f := newFixture()
	f.seed()

	amount := decimal.NewFromFloat(12.345)
	created, err := f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "u1",
		CategoryID: "c1",
		Amount:     &amount,
		Date:       "2025-03-15",
		Note:       "groceries",
	}, date(15))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Amount.Equal(decimal.NewFromFloat(12.35)), "amount should be rounded to 2 decimals")
	assert.Equal(t, "2025-03-15", created.Date)
	assert.Equal(t, "Food", created.Category)
	assert.Equal(t, "expense", created.Type)
	assert.Equal(t, "groceries", created.Description)
}

func TestCreateTransactionIncomeProjection(t *testing.T) {
	f := newFixture()
	f.seed()

	amount := decimal.NewFromInt(2000)
	created, err := f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "u1",
		CategoryID: "c2",
		Amount:     &amount,
		Date:       "2025-03-01",
	}, date(1))
	require.NoError(t, err)

	assert.Equal(t, "income", created.Type)
	assert.Equal(t, "Transaction", created.Description, "empty note falls back to the default description")
}

func TestCreateTransactionValidation(t *testing.T) {
	f := newFixture()
	f.seed()

	negative := decimal.NewFromInt(-1)
	_, err := f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "u1",
		CategoryID: "c1",
		Amount:     &negative,
		Date:       "2025-03-15",
	}, date(15))
	assert.ErrorIs(t, err, transaction.ErrNegativeAmount)

	zero := decimal.Zero
	_, err = f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "u1",
		CategoryID: "c1",
		Amount:     &zero,
		Date:       "2025-03-15",
	}, date(15))
	assert.NoError(t, err, "zero amounts are allowed")
}

func TestCreateTransactionUnknownReferences(t *testing.T) {
	f := newFixture()
	f.seed()

	amount := decimal.NewFromInt(10)

	_, err := f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "missing",
		CategoryID: "c1",
		Amount:     &amount,
		Date:       "2025-03-15",
	}, date(15))
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	_, err = f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "u1",
		CategoryID: "missing",
		Amount:     &amount,
		Date:       "2025-03-15",
	}, date(15))
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}

func TestUpdateTransactionOwnership(t *testing.T) {
	f := newFixture()
	f.seed()

	amount := decimal.NewFromInt(10)
	created, err := f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "u1",
		CategoryID: "c1",
		Amount:     &amount,
		Date:       "2025-03-15",
	}, date(15))
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), created.ID, transaction.UpdateTransactionRequest{
		UserID:     "u2",
		CategoryID: "c1",
		Amount:     &amount,
		Date:       "2025-03-16",
	}, date(16))
	assert.ErrorIs(t, err, transaction.ErrTransactionNotOwned)
}

func TestDeleteTransaction(t *testing.T) {
	f := newFixture()
	f.seed()

	amount := decimal.NewFromInt(10)
	created, err := f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "u1",
		CategoryID: "c1",
		Amount:     &amount,
		Date:       "2025-03-15",
	}, date(15))
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(context.Background(), created.ID, "u2"), transaction.ErrTransactionNotOwned)
	require.NoError(t, f.svc.Delete(context.Background(), created.ID, "u1"))
	assert.ErrorIs(t, f.svc.Delete(context.Background(), created.ID, "u1"), transaction.ErrTransactionNotFound)
}

func TestGetByUserDanglingCategory(t *testing.T) {
	f := newFixture()
	f.seed()

	amount := decimal.NewFromInt(10)
	_, err := f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "u1",
		CategoryID: "c1",
		Amount:     &amount,
		Date:       "2025-03-15",
	}, date(15))
	require.NoError(t, err)

	// Category deletion leaves the transaction behind with a dangling
	// reference; listing still succeeds with an empty projection.
	delete(f.categories.byID, "c1")

	listed, err := f.svc.GetByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "c1", listed[0].CategoryID)
	assert.Empty(t, listed[0].Category)
	assert.Equal(t, "expense", listed[0].Type)
}

func TestSumByDateRange(t *testing.T) {
	f := newFixture()
	f.seed()

	amounts := map[int]decimal.Decimal{
		10: decimal.NewFromFloat(10.50),
		15: decimal.NewFromFloat(4.25),
		25: decimal.NewFromInt(100),
	}
	for day, amount := range amounts {
		a := amount
		_, err := f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
			UserID:     "u1",
			CategoryID: "c1",
			Amount:     &a,
			Date:       date(day).Format("2006-01-02"),
		}, date(day))
		require.NoError(t, err)
	}

	t.Run("inclusive range", func(t *testing.T) {
		summary, err := f.svc.SumByDateRange(context.Background(), "u1", date(10), date(15))
		require.NoError(t, err)
		assert.True(t, summary.Total.Equal(decimal.NewFromFloat(14.75)))
	})

	t.Run("empty range yields zero", func(t *testing.T) {
		summary, err := f.svc.SumByDateRange(context.Background(), "u1", date(1), date(5))
		require.NoError(t, err)
		assert.True(t, summary.Total.IsZero())
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.svc.SumByDateRange(context.Background(), "missing", date(1), date(31))
		assert.ErrorIs(t, err, auth.ErrUserNotFound)
	})
}

func TestSumByCategoryAndDateRange(t *testing.T) {
	f := newFixture()
	f.seed()

	food := decimal.NewFromInt(30)
	salary := decimal.NewFromInt(2000)

	_, err := f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "u1",
		CategoryID: "c1",
		Amount:     &food,
		Date:       "2025-03-10",
	}, date(10))
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), transaction.CreateTransactionRequest{
		UserID:     "u1",
		CategoryID: "c2",
		Amount:     &salary,
		Date:       "2025-03-10",
	}, date(10))
	require.NoError(t, err)

	summary, err := f.svc.SumByCategoryAndDateRange(context.Background(), "u1", "c1", date(1), date(31))
	require.NoError(t, err)
	assert.True(t, summary.Total.Equal(food))

	_, err = f.svc.SumByCategoryAndDateRange(context.Background(), "u1", "missing", date(1), date(31))
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
