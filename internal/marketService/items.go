package market

import (
	"context"
	"fmt"
	"strings"

	"auction-marketplace/internal/identity"
	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
)

// ListItems returns every item with its category and high bidder names
func (s *MarketService) ListItems(ctx context.Context, p *identity.Principal) ([]model.ItemView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return nil, fmt.Errorf("service: list items: %w", err)
	}

	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items: %w", err)
	}

	views, err := resolveAll(ctx, items, newResolver(s.repo).item)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve items: %w", err)
	}
	return views, nil
}

func (s *MarketService) GetItem(ctx context.Context, p *identity.Principal, id uint) (model.ItemView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.ItemView{}, fmt.Errorf("service: get item: %w", err)
	}

	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return model.ItemView{}, fmt.Errorf("service: failed to get item %d: %w", id, err)
	}

	view, err := newResolver(s.repo).item(ctx, item)
	if err != nil {
		return model.ItemView{}, fmt.Errorf("service: failed to resolve item %d: %w", id, err)
	}
	return view, nil
}

// CreateItem stores a new item priced at its initial price
func (s *MarketService) CreateItem(ctx context.Context, p *identity.Principal, in model.NewItem) (model.ItemView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.ItemView{}, fmt.Errorf("service: create item: %w", err)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.ItemView{}, fmt.Errorf("service: %w - empty item name", marketerrors.ErrInvalidInput)
	}
	if in.InitPrice < 0 {
		return model.ItemView{}, fmt.Errorf("service: %w - negative initial price", marketerrors.ErrInvalidInput)
	}

	item := model.Item{
		Name:        name,
		Description: in.Description,
		Img:         in.Img,
		CreatedAt:   s.now(),
		InitPrice:   in.InitPrice,
		FinalPrice:  in.InitPrice,
		CategoryID:  in.CategoryID,
		UserID:      in.UserID,
	}

	var view model.ItemView
	err := s.repo.Transaction(ctx, func(tx repository.MarketDB) error {
		if err := tx.CreateItem(ctx, &item); err != nil {
			return fmt.Errorf("failed to create item %s: %w", name, err)
		}
		var err error
		view, err = newResolver(tx).item(ctx, item)
		return err
	})
	if err != nil {
		return model.ItemView{}, fmt.Errorf("service: %w", err)
	}
	return view, nil
}

// UpdateItem merges patch into the stored item. Once a bidder is recorded the
// final price can only go up.
func (s *MarketService) UpdateItem(ctx context.Context, p *identity.Principal, id uint, patch model.ItemPatch) (model.ItemView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.ItemView{}, fmt.Errorf("service: update item: %w", err)
	}

	var view model.ItemView
	err := s.repo.Transaction(ctx, func(tx repository.MarketDB) error {
		item, err := tx.GetItemForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get item %d: %w", id, err)
		}

		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return fmt.Errorf("%w - empty item name", marketerrors.ErrInvalidInput)
			}
			item.Name = name
		}
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.Img != nil {
			item.Img = patch.Img
		}
		if patch.FinalPrice != nil {
			if item.UserID != nil && *patch.FinalPrice < item.FinalPrice {
				return fmt.Errorf("%w - item %d is at %.2f", marketerrors.ErrInvalidPrice, id, item.FinalPrice)
			}
			item.FinalPrice = *patch.FinalPrice
		}
		if patch.CategoryID != nil {
			item.CategoryID = *patch.CategoryID
		}
		if patch.UserID != nil {
			item.UserID = patch.UserID
		}

		if err := tx.UpdateItem(ctx, &item); err != nil {
			return fmt.Errorf("failed to update item %d: %w", id, err)
		}
		view, err = newResolver(tx).item(ctx, item)
		return err
	})
	if err != nil {
		return model.ItemView{}, fmt.Errorf("service: %w", err)
	}
	return view, nil
}

func (s *MarketService) DeleteItem(ctx context.Context, p *identity.Principal, id uint) error {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return fmt.Errorf("service: delete item: %w", err)
	}

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete item %d: %w", id, err)
	}
	return nil
}
