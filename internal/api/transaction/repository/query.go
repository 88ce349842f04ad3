package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			category_id,
			amount,
			date,
			note,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:category_id,
			:amount,
			:date,
			:note,
			:created_at,
			:updated_at
		)
	`

	queryGetTransactionByID = `
		SELECT
			id,
			user_id,
			category_id,
			amount,
			date,
			note,
			created_at,
			updated_at
		FROM transactions
		WHERE id = :id
	`

	queryGetTransactionsByUserID = `
		SELECT
			id,
			user_id,
			category_id,
			amount,
			date,
			note,
			created_at,
			updated_at
		FROM transactions
		WHERE user_id = :user_id
		ORDER BY date DESC, created_at DESC
	`

	queryGetTransactionsByUserAndCategory = `
		SELECT
			id,
			user_id,
			category_id,
			amount,
			date,
			note,
			created_at,
			updated_at
		FROM transactions
		WHERE user_id = :user_id AND category_id = :category_id
		ORDER BY date DESC, created_at DESC
	`

	queryGetTransactionsByUserAndDateRange = `
		SELECT
			id,
			user_id,
			category_id,
			amount,
			date,
			note,
			created_at,
			updated_at
		FROM transactions
		WHERE user_id = :user_id
			AND date BETWEEN :start_date AND :end_date
		ORDER BY date DESC, created_at DESC
	`

	querySumTransactionsByUserAndDateRange = `
		SELECT COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE user_id = :user_id
			AND date BETWEEN :start_date AND :end_date
	`

	querySumTransactionsByUserAndCategoryAndDateRange = `
		SELECT COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE user_id = :user_id
			AND category_id = :category_id
			AND date BETWEEN :start_date AND :end_date
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			user_id = :user_id,
			category_id = :category_id,
			amount = :amount,
			date = :date,
			note = :note,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`
)
