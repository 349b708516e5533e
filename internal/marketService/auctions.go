package market

import (
	"context"
	"fmt"
	"strings"

	"auction-marketplace/internal/identity"
	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"
)

func (s *MarketService) ListAuctions(ctx context.Context, p *identity.Principal) ([]model.AuctionView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return nil, fmt.Errorf("service: list auctions: %w", err)
	}

	auctions, err := s.repo.ListAuctions(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	views, err := resolveAll(ctx, auctions, newResolver(s.repo).auction)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve auctions: %w", err)
	}
	return views, nil
}

func (s *MarketService) GetAuction(ctx context.Context, p *identity.Principal, id uint) (model.AuctionView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.AuctionView{}, fmt.Errorf("service: get auction: %w", err)
	}

	auction, err := s.repo.GetAuction(ctx, id)
	if err != nil {
		return model.AuctionView{}, fmt.Errorf("service: failed to get auction %d: %w", id, err)
	}

	view, err := newResolver(s.repo).auction(ctx, auction)
	if err != nil {
		return model.AuctionView{}, fmt.Errorf("service: failed to resolve auction %d: %w", id, err)
	}
	return view, nil
}

// CreateAuction validates dates and state before writing. A new auction
// starts scheduled; asking for another state applies the same transition an
// update would.
func (s *MarketService) CreateAuction(ctx context.Context, p *identity.Principal, in model.NewAuction) (model.AuctionView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.AuctionView{}, fmt.Errorf("service: create auction: %w", err)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.AuctionView{}, fmt.Errorf("service: %w - empty auction name", marketerrors.ErrInvalidInput)
	}

	target := model.StateScheduled
	if in.State != nil {
		target = *in.State
	}
	step, err := planTransition(model.StateScheduled, target)
	if err != nil {
		return model.AuctionView{}, fmt.Errorf("service: %w", err)
	}

	now := s.now()
	if err := validateCreationDates(in.StartDate, in.EndDate, now); err != nil {
		return model.AuctionView{}, fmt.Errorf("service: %w", err)
	}

	auction := model.Auction{
		Name:        name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Type:        in.Type,
		State:       target,
		ItemID:      in.ItemID,
	}
	if step.activate {
		auction.StartDate = &now
	}

	var view model.AuctionView
	err = s.repo.Transaction(ctx, func(tx repository.MarketDB) error {
		if err := tx.CreateAuction(ctx, &auction); err != nil {
			return fmt.Errorf("failed to create auction %s: %w", name, err)
		}
		r := newResolver(tx)
		if step.finish {
			item, err := s.settle(ctx, tx, auction)
			if err != nil {
				return err
			}
			r.remember(refItem, item.ID, item.Name)
		}
		var err error
		view, err = r.auction(ctx, auction)
		return err
	})
	if err != nil {
		return model.AuctionView{}, fmt.Errorf("service: %w", err)
	}
	return view, nil
}

// UpdateAuction merges patch into the stored auction and applies the
// lifecycle transition it asks for. The auction row stays locked until the
// payment for a finishing auction is written.
func (s *MarketService) UpdateAuction(ctx context.Context, p *identity.Principal, id uint, patch model.AuctionPatch) (model.AuctionView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.AuctionView{}, fmt.Errorf("service: update auction: %w", err)
	}
	if patch.State != nil && !patch.State.Valid() {
		return model.AuctionView{}, fmt.Errorf("service: %w: %q", marketerrors.ErrInvalidState, *patch.State)
	}

	var view model.AuctionView
	err := s.repo.Transaction(ctx, func(tx repository.MarketDB) error {
		auction, err := tx.GetAuctionForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get auction %d: %w", id, err)
		}

		target := auction.State
		if patch.State != nil {
			target = *patch.State
		}
		step, err := planTransition(auction.State, target)
		if err != nil {
			return fmt.Errorf("auction %d: %w", id, err)
		}

		if err := mergeAuction(&auction, patch); err != nil {
			return err
		}
		// order is checked on the stored and supplied dates; the activation
		// stamp may land after an end_date that has already passed
		if err := validateDateOrder(auction.StartDate, auction.EndDate); err != nil {
			return err
		}
		auction.State = target
		if step.activate {
			now := s.now()
			auction.StartDate = &now
		}

		if err := tx.UpdateAuction(ctx, &auction); err != nil {
			return fmt.Errorf("failed to update auction %d: %w", id, err)
		}
		r := newResolver(tx)
		if step.finish {
			item, err := s.settle(ctx, tx, auction)
			if err != nil {
				return err
			}
			r.remember(refItem, item.ID, item.Name)
		}

		view, err = r.auction(ctx, auction)
		return err
	})
	if err != nil {
		return model.AuctionView{}, fmt.Errorf("service: %w", err)
	}
	return view, nil
}

func (s *MarketService) DeleteAuction(ctx context.Context, p *identity.Principal, id uint) error {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return fmt.Errorf("service: delete auction: %w", err)
	}

	if err := s.repo.DeleteAuction(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete auction %d: %w", id, err)
	}
	return nil
}

func mergeAuction(auction *model.Auction, patch model.AuctionPatch) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return fmt.Errorf("%w - empty auction name", marketerrors.ErrInvalidInput)
		}
		auction.Name = name
	}
	if patch.Description != nil {
		auction.Description = *patch.Description
	}
	if patch.StartDate != nil {
		auction.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		auction.EndDate = patch.EndDate
	}
	if patch.Type != nil {
		auction.Type = patch.Type
	}
	if patch.ItemID != nil {
		auction.ItemID = *patch.ItemID
	}
	return nil
}

// settle writes the payment owed for a finished auction: the item's current
// high bidder pays its final price. An item nobody bid on is left unsettled.
// The locked item is returned so callers can reuse its name.
func (s *MarketService) settle(ctx context.Context, tx repository.MarketDB, auction model.Auction) (model.Item, error) {
	item, err := tx.GetItemForUpdate(ctx, auction.ItemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to get item %d of auction %d: %w", auction.ItemID, auction.ID, err)
	}
	if item.UserID == nil {
		utils.Warn("auction finished without bids", map[string]any{
			"auction_id": auction.ID,
			"item_id":    item.ID,
		})
		return item, nil
	}

	payment := model.Payment{
		Amount: item.FinalPrice,
		Method: s.paymentMethod,
		Date:   s.now(),
		State:  model.PaymentPending,
		ItemID: item.ID,
		UserID: *item.UserID,
	}
	if err := tx.CreatePayment(ctx, &payment); err != nil {
		return model.Item{}, fmt.Errorf("failed to create payment for auction %d: %w", auction.ID, err)
	}

	utils.Info("auction settled", map[string]any{
		"auction_id": auction.ID,
		"item_id":    item.ID,
		"payment_id": payment.ID,
		"user_id":    payment.UserID,
		"amount":     payment.Amount,
	})
	return item, nil
}
