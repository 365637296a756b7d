package helper

import (
	"context"
	"fmt"
	adminService "staybook/internal/domains/admin/service"
	categoryService "staybook/internal/domains/category/service"

	"github.com/rs/zerolog/log"
)

// Seeder installs the reference data a fresh database needs: default categories and the first admin.
type Seeder struct {
	Category categoryService.Category
	Admin    adminService.Admin
}

func NewSeeder(category categoryService.Category, admin adminService.Admin) *Seeder {
	return &Seeder{
		Category: category,
		Admin:    admin,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	added, err := s.Category.Seed(ctx)
	if err != nil {
		return fmt.Errorf("error seeding categories: %w", err)
	}

	log.Info().Int("added", added).Msg("Default categories seeded")

	if err = s.Admin.CreateInitialAdmin(ctx); err != nil {
		return fmt.Errorf("error seeding admin: %w", err)
	}

	return nil
}
