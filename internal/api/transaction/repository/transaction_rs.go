package transactionRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID         sql.NullString  `db:"id"`
	UserID     sql.NullString  `db:"user_id"`
	CategoryID sql.NullString  `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	Date       sql.NullTime    `db:"date"`
	Note       sql.NullString  `db:"note"`
	CreatedAt  sql.NullTime    `db:"created_at"`
	UpdatedAt  sql.NullTime    `db:"updated_at"`
}

func (r *transactionRepository) CreateTransaction(c context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          t.ID,
		"user_id":     t.UserID,
		"category_id": t.CategoryID,
		"amount":      t.Amount,
		"date":        t.Date,
		"note":        t.Note,
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")

		return err
	}

	return nil
}

func (r *transactionRepository) GetByID(c context.Context, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var t TransactionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(t), nil
}

func (r *transactionRepository) GetByUserID(c context.Context, userID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	return r.selectTransactions(c, requestID, "GetByUserID", queryGetTransactionsByUserID, argsKV)
}

func (r *transactionRepository) GetByUserAndCategory(c context.Context, userID string, categoryID string) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
	}

	return r.selectTransactions(c, requestID, "GetByUserAndCategory", queryGetTransactionsByUserAndCategory, argsKV)
}

func (r *transactionRepository) GetByUserAndDateRange(c context.Context, userID string, start time.Time, end time.Time) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"start_date": start,
		"end_date":   end,
	}

	return r.selectTransactions(c, requestID, "GetByUserAndDateRange", queryGetTransactionsByUserAndDateRange, argsKV)
}

func (r *transactionRepository) SumByUserAndDateRange(c context.Context, userID string, start time.Time, end time.Time) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id":    userID,
		"start_date": start,
		"end_date":   end,
	}

	return r.sumTransactions(c, requestID, "SumByUserAndDateRange", querySumTransactionsByUserAndDateRange, argsKV)
}

func (r *transactionRepository) SumByUserAndCategoryAndDateRange(c context.Context, userID string, categoryID string, start time.Time, end time.Time) (decimal.Decimal, error) {
	requestID := contextPkg.GetRequestID(c)

	argsKV := map[string]interface{}{
		"user_id":     userID,
		"category_id": categoryID,
		"start_date":  start,
		"end_date":    end,
	}

	return r.sumTransactions(c, requestID, "SumByUserAndCategoryAndDateRange", querySumTransactionsByUserAndCategoryAndDateRange, argsKV)
}

func (r *transactionRepository) UpdateTransaction(c context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          t.ID,
		"user_id":     t.UserID,
		"category_id": t.CategoryID,
		"amount":      t.Amount,
		"date":        t.Date,
		"note":        t.Note,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("UpdateTransaction no rows affected")

		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")

		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction rows affected err")

		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("DeleteTransaction no rows affected")

		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) selectTransactions(c context.Context, requestID string, op string, namedQuery string, argsKV map[string]interface{}) ([]entity.Transaction, error) {
	var transactions []TransactionDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &transactions, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, r.makeTransaction(t))
	}

	return result, nil
}

func (r *transactionRepository) sumTransactions(c context.Context, requestID string, op string, namedQuery string, argsKV map[string]interface{}) (decimal.Decimal, error) {
	var total decimal.Decimal

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " named query preparation err")
		return decimal.Zero, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " execution err")
		return decimal.Zero, err
	}

	return total, nil
}

func (r *transactionRepository) makeTransaction(t TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:         t.ID.String,
		UserID:     t.UserID.String,
		CategoryID: t.CategoryID.String,
		Amount:     t.Amount,
		Date:       t.Date.Time,
		Note:       t.Note.String,
		CreatedAt:  t.CreatedAt.Time,
		UpdatedAt:  t.UpdatedAt.Time,
	}
}
