package budgetRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"FinanceTracker/internal/api/budget"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type BudgetDB struct {
	ID           sql.NullString  `db:"id"`
	UserID       sql.NullString  `db:"user_id"`
	CategoryID   sql.NullString  `db:"category_id"`
	MonthlyLimit decimal.Decimal `db:"monthly_limit"`
	CreatedAt    sql.NullTime    `db:"created_at"`
	UpdatedAt    sql.NullTime    `db:"updated_at"`
}

func (r *budgetRepository) CreateBudget(c context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            b.ID,
		"user_id":       b.UserID,
		"category_id":   b.CategoryID,
		"monthly_limit": b.MonthlyLimit,
		"created_at":    time.Now(),
		"updated_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBudget")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				if pqErr.Constraint == "budgets_user_id_category_id_key" {
					r.log.WithFields(logrus.Fields{
						"request_id": requestID,
						"error":      err.Error(),
					}).Warn("Budget already exists for user and category")
					return budget.ErrBudgetAlreadyExists
				}
			}
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating budget")

		return err
	}

	return nil
}

func (r *budgetRepository) GetByID(c context.Context, id string) (entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var b BudgetDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBudgetByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Budget{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no rows found")
			return entity.Budget{}, budget.ErrBudgetNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Budget{}, err
	}

	return r.makeBudget(b), nil
}

func (r *budgetRepository) GetByUserID(c context.Context, userID string) ([]entity.Budget, error) {
	requestID := contextPkg.GetRequestID(c)
	var budgets []BudgetDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetBudgetsByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &budgets, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByUserID execution err")
		return nil, err
	}

	result := make([]entity.Budget, 0, len(budgets))
	for _, b := range budgets {
		result = append(result, r.makeBudget(b))
	}

	return result, nil
}

func (r *budgetRepository) ExistsByUserAndCategory(c context.Context, userID string, categoryID string) (bool, error) {
	requestID := contextPkg.GetRequestID(c)
	var found bool

	argsKV := map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
	}

	query, args, err := sqlx.Named(queryExistsBudgetByUserAndCategory, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ExistsByUserAndCategory named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&found); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ExistsByUserAndCategory execution err")
		return false, err
	}

	return found, nil
}

func (r *budgetRepository) UpdateBudget(c context.Context, b entity.Budget) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":            b.ID,
		"user_id":       b.UserID,
		"category_id":   b.CategoryID,
		"monthly_limit": b.MonthlyLimit,
		"updated_at":    time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Budget already exists for user and category")
			return budget.ErrBudgetAlreadyExists
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBudget rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateBudget no rows affected")

		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) DeleteBudget(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBudget, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBudget named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBudget execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBudget rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteBudget no rows affected")

		return budget.ErrBudgetNotFound
	}

	return nil
}

func (r *budgetRepository) makeBudget(b BudgetDB) entity.Budget {
	return entity.Budget{
		ID:           b.ID.String,
		UserID:       b.UserID.String,
		CategoryID:   b.CategoryID.String,
		MonthlyLimit: b.MonthlyLimit,
		CreatedAt:    b.CreatedAt.Time,
		UpdatedAt:    b.UpdatedAt.Time,
	}
}
