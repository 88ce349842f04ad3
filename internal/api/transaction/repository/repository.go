package transactionRepository

import (
	"time"

	"FinanceTracker/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Transactions: &transactionRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Client struct {
	Transactions interface {
		CreateTransaction(ctx context.Context, transaction entity.Transaction) error
		GetByID(ctx context.Context, id string) (entity.Transaction, error)
		GetByUserID(ctx context.Context, userID string) ([]entity.Transaction, error)
		GetByUserAndCategory(ctx context.Context, userID string, categoryID string) ([]entity.Transaction, error)
		GetByUserAndDateRange(ctx context.Context, userID string, start time.Time, end time.Time) ([]entity.Transaction, error)
		SumByUserAndDateRange(ctx context.Context, userID string, start time.Time, end time.Time) (decimal.Decimal, error)
		SumByUserAndCategoryAndDateRange(ctx context.Context, userID string, categoryID string, start time.Time, end time.Time) (decimal.Decimal, error)
		UpdateTransaction(ctx context.Context, transaction entity.Transaction) error
		DeleteTransaction(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type transactionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
