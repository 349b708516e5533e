package market

import (
	"context"
	"errors"
	"testing"

	"auction-marketplace/internal/identity"
	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Tests PlaceBid
func TestMarketService_PlaceBid(t *testing.T) {
	t.Parallel()

	active := model.Auction{ID: 3, Name: "A1", State: model.StateActive, ItemID: 1}

	tests := []struct {
		name        string
		principal   *identity.Principal
		in          model.NewBid
		mockSetup   func(repo *repository.MockMarketDB)
		expectedErr error
	}{
		{
			name:      "valid_bid",
			principal: userPrincipal,
			in:        model.NewBid{Amount: 25, AuctionID: 3},
			mockSetup: func(repo *repository.MockMarketDB) {
				expectTx(repo)
				gomock.InOrder(
					repo.EXPECT().GetAuctionForUpdate(gomock.Any(), uint(3)).Return(active, nil),
					repo.EXPECT().CreateBid(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *model.Bid) error {
						require.Equal(t, userPrincipal.ID, b.UserID)
						require.Equal(t, 25.0, b.Amount)
						require.Equal(t, fixedNow, b.Date)
						b.ID = 11
						return nil
					}),
					repo.EXPECT().AddToItemPrice(gomock.Any(), uint(1), 25.0, userPrincipal.ID).Return(nil),
				)
			},
		},
		{
			name:      "scheduled_auction_accepts_bids",
			principal: userPrincipal,
			in:        model.NewBid{Amount: 1, AuctionID: 3},
			mockSetup: func(repo *repository.MockMarketDB) {
				expectTx(repo)
				scheduled := active
				scheduled.State = model.StateScheduled
				repo.EXPECT().GetAuctionForUpdate(gomock.Any(), uint(3)).Return(scheduled, nil)
				repo.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().AddToItemPrice(gomock.Any(), uint(1), 1.0, userPrincipal.ID).Return(nil)
			},
		},
		{
			name:        "zero_amount",
			principal:   userPrincipal,
			in:          model.NewBid{Amount: 0, AuctionID: 3},
			mockSetup:   func(*repository.MockMarketDB) {},
			expectedErr: marketerrors.ErrInvalidBid,
		},
		{
			name:        "negative_amount",
			principal:   userPrincipal,
			in:          model.NewBid{Amount: -50, AuctionID: 3},
			mockSetup:   func(*repository.MockMarketDB) {},
			expectedErr: marketerrors.ErrInvalidBid,
		},
		{
			name:        "anonymous",
			principal:   nil,
			in:          model.NewBid{Amount: 10, AuctionID: 3},
			mockSetup:   func(*repository.MockMarketDB) {},
			expectedErr: marketerrors.ErrUnauthenticated,
		},
		{
			name:      "auction_not_found",
			principal: userPrincipal,
			in:        model.NewBid{Amount: 10, AuctionID: 99},
			mockSetup: func(repo *repository.MockMarketDB) {
				expectTx(repo)
				repo.EXPECT().GetAuctionForUpdate(gomock.Any(), uint(99)).Return(model.Auction{}, marketerrors.ErrNotFound)
			},
			expectedErr: marketerrors.ErrNotFound,
		},
		{
			name:      "auction_finished",
			principal: userPrincipal,
			in:        model.NewBid{Amount: 10, AuctionID: 3},
			mockSetup: func(repo *repository.MockMarketDB) {
				expectTx(repo)
				finished := active
				finished.State = model.StateFinished
				repo.EXPECT().GetAuctionForUpdate(gomock.Any(), uint(3)).Return(finished, nil)
			},
			expectedErr: marketerrors.ErrAuctionClosed,
		},
		{
			name:      "price_update_fails",
			principal: userPrincipal,
			in:        model.NewBid{Amount: 10, AuctionID: 3},
			mockSetup: func(repo *repository.MockMarketDB) {
				expectTx(repo)
				repo.EXPECT().GetAuctionForUpdate(gomock.Any(), uint(3)).Return(active, nil)
				repo.EXPECT().CreateBid(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().AddToItemPrice(gomock.Any(), uint(1), 10.0, userPrincipal.ID).Return(marketerrors.ErrStorage)
			},
			expectedErr: marketerrors.ErrStorage,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newTestService(t)
			tc.mockSetup(repo)

			view, err := svc.PlaceBid(context.Background(), tc.principal, tc.in)
			switch {
			case tc.expectedErr != nil:
				require.True(t, errors.Is(err, tc.expectedErr), "expected error: %v, got: %v", tc.expectedErr, err)
			default:
				require.NoError(t, err)
				require.Equal(t, "A1", view.AuctionName)
				require.Equal(t, userPrincipal.Name, view.UserName)
				require.Equal(t, tc.in.Amount, view.Amount)
			}
		})
	}
}

func TestMarketService_BidAdministration(t *testing.T) {
	t.Parallel()

	stored := model.Bid{ID: 4, Amount: 10, Date: fixedNow, AuctionID: 3, UserID: 2}

	t.Run("user_cannot_update", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.UpdateBid(context.Background(), userPrincipal, 4, model.BidPatch{Amount: ptr(5.0)})
		require.ErrorIs(t, err, marketerrors.ErrForbidden)
	})

	t.Run("admin_corrects_amount_without_touching_price", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetBid(gomock.Any(), uint(4)).Return(stored, nil)
		repo.EXPECT().UpdateBid(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *model.Bid) error {
			require.Equal(t, 5.0, b.Amount)
			require.Equal(t, stored.AuctionID, b.AuctionID)
			return nil
		})
		repo.EXPECT().GetAuction(gomock.Any(), uint(3)).Return(model.Auction{ID: 3, Name: "A1"}, nil)
		repo.EXPECT().GetUser(gomock.Any(), uint(2)).Return(model.User{ID: 2, Name: "ana"}, nil)

		view, err := svc.UpdateBid(context.Background(), adminPrincipal, 4, model.BidPatch{Amount: ptr(5.0)})
		require.NoError(t, err)
		require.Equal(t, 5.0, view.Amount)
		require.Equal(t, "A1", view.AuctionName)
		require.Equal(t, "ana", view.UserName)
	})

	t.Run("admin_rejects_non_positive_amount", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().GetBid(gomock.Any(), uint(4)).Return(stored, nil)
		_, err := svc.UpdateBid(context.Background(), adminPrincipal, 4, model.BidPatch{Amount: ptr(0.0)})
		require.ErrorIs(t, err, marketerrors.ErrInvalidBid)
	})

	t.Run("user_cannot_delete", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		require.ErrorIs(t, svc.DeleteBid(context.Background(), userPrincipal, 4), marketerrors.ErrForbidden)
	})

	t.Run("admin_delete_missing", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().DeleteBid(gomock.Any(), uint(4)).Return(marketerrors.ErrNotFound)
		require.ErrorIs(t, svc.DeleteBid(context.Background(), adminPrincipal, 4), marketerrors.ErrNotFound)
	})

	t.Run("list_resolves_names", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().ListBids(gomock.Any()).Return([]model.Bid{stored, {ID: 5, Amount: 3, AuctionID: 3, UserID: 2}}, nil)
		repo.EXPECT().GetAuction(gomock.Any(), uint(3)).Return(model.Auction{ID: 3, Name: "A1"}, nil)
		repo.EXPECT().GetUser(gomock.Any(), uint(2)).Return(model.User{ID: 2, Name: "ana"}, nil)

		views, err := svc.ListBids(context.Background(), userPrincipal)
		require.NoError(t, err)
		require.Len(t, views, 2)
		require.Equal(t, "ana", views[1].UserName)
	})
}
