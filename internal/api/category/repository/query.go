package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO categories (
			id,
			name,
			type,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:type,
			:created_at,
			:updated_at
		)
	`

	queryGetCategoryByID = `
		SELECT
			id,
			name,
			type,
			created_at,
			updated_at
		FROM categories
		WHERE id = :id
	`

	queryGetAllCategories = `
		SELECT
			id,
			name,
			type,
			created_at,
			updated_at
		FROM categories
		ORDER BY name ASC
	`

	queryGetCategoriesByType = `
		SELECT
			id,
			name,
			type,
			created_at,
			updated_at
		FROM categories
		WHERE type = :type
		ORDER BY name ASC
	`

	queryExistsCategoryByName = `
		SELECT EXISTS (
			SELECT 1 FROM categories WHERE name = :name
		) AS found
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			name = :name,
			type = :type,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
	`
)
