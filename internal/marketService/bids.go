package market

import (
	"context"
	"fmt"

	"auction-marketplace/internal/identity"
	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
)

func (s *MarketService) ListBids(ctx context.Context, p *identity.Principal) ([]model.BidView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return nil, fmt.Errorf("service: list bids: %w", err)
	}

	bids, err := s.repo.ListBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids: %w", err)
	}

	views, err := resolveAll(ctx, bids, newResolver(s.repo).bid)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve bids: %w", err)
	}
	return views, nil
}

func (s *MarketService) GetBid(ctx context.Context, p *identity.Principal, id uint) (model.BidView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.BidView{}, fmt.Errorf("service: get bid: %w", err)
	}

	bid, err := s.repo.GetBid(ctx, id)
	if err != nil {
		return model.BidView{}, fmt.Errorf("service: failed to get bid %d: %w", id, err)
	}

	view, err := newResolver(s.repo).bid(ctx, bid)
	if err != nil {
		return model.BidView{}, fmt.Errorf("service: failed to resolve bid %d: %w", id, err)
	}
	return view, nil
}

// PlaceBid records a bid by the caller and raises the auctioned item's price
// by its amount. The auction row lock serializes bids with each other and
// with the auction finishing.
func (s *MarketService) PlaceBid(ctx context.Context, p *identity.Principal, in model.NewBid) (model.BidView, error) {
	if err := identity.Authorize(p, identity.AnyRole); err != nil {
		return model.BidView{}, fmt.Errorf("service: place bid: %w", err)
	}
	if in.Amount <= 0 {
		return model.BidView{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
	}

	bid := model.Bid{
		Amount:    in.Amount,
		Date:      s.now(),
		AuctionID: in.AuctionID,
		UserID:    p.ID,
	}

	var auction model.Auction
	err := s.repo.Transaction(ctx, func(tx repository.MarketDB) error {
		var err error
		auction, err = tx.GetAuctionForUpdate(ctx, in.AuctionID)
		if err != nil {
			return fmt.Errorf("failed to get auction %d: %w", in.AuctionID, err)
		}
		if auction.State == model.StateFinished {
			return fmt.Errorf("%w - auction %d", marketerrors.ErrAuctionClosed, auction.ID)
		}

		if err := tx.CreateBid(ctx, &bid); err != nil {
			return fmt.Errorf("failed to record bid on auction %d by user %d: %w", auction.ID, p.ID, err)
		}
		if err := tx.AddToItemPrice(ctx, auction.ItemID, bid.Amount, p.ID); err != nil {
			return fmt.Errorf("failed to raise price of item %d: %w", auction.ItemID, err)
		}
		return nil
	})
	if err != nil {
		return model.BidView{}, fmt.Errorf("service: %w", err)
	}

	return model.BidView{
		ID:          bid.ID,
		Amount:      bid.Amount,
		Date:        bid.Date,
		AuctionName: auction.Name,
		UserName:    p.Name,
	}, nil
}

// UpdateBid corrects a stored bid. Item prices are not recomputed.
func (s *MarketService) UpdateBid(ctx context.Context, p *identity.Principal, id uint, patch model.BidPatch) (model.BidView, error) {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return model.BidView{}, fmt.Errorf("service: update bid: %w", err)
	}

	bid, err := s.repo.GetBid(ctx, id)
	if err != nil {
		return model.BidView{}, fmt.Errorf("service: failed to get bid %d: %w", id, err)
	}
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return model.BidView{}, fmt.Errorf("service: %w - non-positive bid amount", marketerrors.ErrInvalidBid)
		}
		bid.Amount = *patch.Amount
	}
	if patch.Date != nil {
		bid.Date = *patch.Date
	}
	if patch.AuctionID != nil {
		bid.AuctionID = *patch.AuctionID
	}
	if patch.UserID != nil {
		bid.UserID = *patch.UserID
	}

	if err := s.repo.UpdateBid(ctx, &bid); err != nil {
		return model.BidView{}, fmt.Errorf("service: failed to update bid %d: %w", id, err)
	}

	view, err := newResolver(s.repo).bid(ctx, bid)
	if err != nil {
		return model.BidView{}, fmt.Errorf("service: failed to resolve bid %d: %w", id, err)
	}
	return view, nil
}

// DeleteBid removes a bid. Item prices are not recomputed.
func (s *MarketService) DeleteBid(ctx context.Context, p *identity.Principal, id uint) error {
	if err := identity.Authorize(p, model.RoleAdmin); err != nil {
		return fmt.Errorf("service: delete bid: %w", err)
	}

	if err := s.repo.DeleteBid(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete bid %d: %w", id, err)
	}
	return nil
}
