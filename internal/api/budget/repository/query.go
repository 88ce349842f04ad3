package budgetRepository

const (
	queryCreateBudget = `
		INSERT INTO budgets (
			id,
			user_id,
			category_id,
			monthly_limit,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:category_id,
			:monthly_limit,
			:created_at,
			:updated_at
		)
	`

	queryGetBudgetByID = `
		SELECT
			id,
			user_id,
			category_id,
			monthly_limit,
			created_at,
			updated_at
		FROM budgets
		WHERE id = :id
	`

	queryGetBudgetsByUserID = `
		SELECT
			id,
			user_id,
			category_id,
			monthly_limit,
			created_at,
			updated_at
		FROM budgets
		WHERE user_id = :user_id
		ORDER BY created_at ASC
	`

	queryExistsBudgetByUserAndCategory = `
		SELECT EXISTS (
			SELECT 1 FROM budgets
			WHERE user_id = :user_id AND category_id = :category_id
		) AS found
	`

	queryUpdateBudget = `
		UPDATE budgets
		SET
			user_id = :user_id,
			category_id = :category_id,
			monthly_limit = :monthly_limit,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBudget = `
		DELETE FROM budgets
		WHERE id = :id
	`
)
