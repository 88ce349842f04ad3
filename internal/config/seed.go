package config

import (
	"time"

	"FinanceTracker/internal/entity"

	"golang.org/x/net/context"
)

type seedCategory struct {
	name         string
	categoryType entity.CategoryType
}

var defaultCategories = []seedCategory{
	{name: "Food", categoryType: entity.CategoryTypeExpense},
	{name: "Rent", categoryType: entity.CategoryTypeExpense},
	{name: "Utilities", categoryType: entity.CategoryTypeExpense},
	{name: "Salary", categoryType: entity.CategoryTypeIncome},
}

// SeedDefaultCategories inserts the starter category set. Already-present
// names are skipped so repeated startups are safe.
func (s *Server) SeedDefaultCategories(ctx context.Context) error {
	repo, err := s.categoryRepo.NewClient(false)
	if err != nil {
		return err
	}

	for _, seed := range defaultCategories {
		exists, err := repo.Categories.ExistsByName(ctx, seed.name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return err
		}

		cat := entity.Category{
			ID:        ULID,
			Name:      seed.name,
			Type:      seed.categoryType,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := repo.Categories.CreateCategory(ctx, cat); err != nil {
			return err
		}

		s.log.Infof("Seeded default category %s", seed.name)
	}

	return nil
}
