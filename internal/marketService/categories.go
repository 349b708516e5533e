package market

import (
	"context"
	"fmt"
	"strings"

	"auction-marketplace/internal/identity"
	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
)

// ListCategories returns every category
func (s *MarketService) ListCategories(ctx context.Context, p *identity.Principal) ([]model.CategoryView, error) {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return nil, fmt.Errorf("service: list categories: %w", err)
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}

	views := make([]model.CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, c.ToView())
	}
	return views, nil
}

// GetCategory is open to every authenticated user so item forms can show names
func (s *MarketService) GetCategory(ctx context.Context, p *identity.Principal, id uint) (model.CategoryView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.CategoryView{}, fmt.Errorf("service: get category: %w", err)
	}

	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return model.CategoryView{}, fmt.Errorf("service: failed to get category %d: %w", id, err)
	}
	return category.ToView(), nil
}

func (s *MarketService) CreateCategory(ctx context.Context, p *identity.Principal, name string) (model.CategoryView, error) {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return model.CategoryView{}, fmt.Errorf("service: create category: %w", err)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return model.CategoryView{}, fmt.Errorf("service: %w - empty category name", marketerrors.ErrInvalidInput)
	}

	category := model.Category{Name: name}
	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return model.CategoryView{}, fmt.Errorf("service: failed to create category %s: %w", name, err)
	}
	return category.ToView(), nil
}

func (s *MarketService) UpdateCategory(ctx context.Context, p *identity.Principal, id uint, name *string) (model.CategoryView, error) {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return model.CategoryView{}, fmt.Errorf("service: update category: %w", err)
	}

	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return model.CategoryView{}, fmt.Errorf("service: failed to get category %d: %w", id, err)
	}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return model.CategoryView{}, fmt.Errorf("service: %w - empty category name", marketerrors.ErrInvalidInput)
		}
		category.Name = trimmed
	}

	if err := s.repo.UpdateCategory(ctx, &category); err != nil {
		return model.CategoryView{}, fmt.Errorf("service: failed to update category %d: %w", id, err)
	}
	return category.ToView(), nil
}

func (s *MarketService) DeleteCategory(ctx context.Context, p *identity.Principal, id uint) error {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return fmt.Errorf("service: delete category: %w", err)
	}

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete category %d: %w", id, err)
	}
	return nil
}
