package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			username,
			password,
			display_name,
			preferred_currency,
			monthly_income_goal,
			created_at,
			updated_at
		) VALUES (
			:id,
			:username,
			:password,
			:display_name,
			:preferred_currency,
			:monthly_income_goal,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			username,
			password,
			display_name,
			preferred_currency,
			monthly_income_goal,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByUsername = `
		SELECT
			id,
			username,
			password,
			display_name,
			preferred_currency,
			monthly_income_goal,
			created_at,
			updated_at
		FROM users
		WHERE username = :username
	`

	queryExistsUserByUsername = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE username = :username
		) AS found
	`

	queryUpdateUserProfile = `
		UPDATE users
		SET
			display_name = :display_name,
			preferred_currency = :preferred_currency,
			monthly_income_goal = :monthly_income_goal,
			updated_at = :updated_at
		WHERE id = :id
	`
)
