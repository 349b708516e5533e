package market

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-marketplace/internal/identity"
	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestMarketService_CreateAuction(t *testing.T) {
	t.Parallel()

	start := fixedNow.Add(time.Hour)
	end := fixedNow.Add(2 * time.Hour)

	tests := []struct {
		name        string
		principal   *identity.Principal
		in          model.NewAuction
		mockSetup   func(repo *repository.MockMarketDB)
		expectedErr error
		check       func(t *testing.T, view model.AuctionView)
	}{
		{
			name:      "defaults_to_scheduled",
			principal: userPrincipal,
			in:        model.NewAuction{Name: "A1", Description: "d", StartDate: &start, EndDate: &end, ItemID: 1},
			mockSetup: func(repo *repository.MockMarketDB) {
				expectTx(repo)
				repo.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *model.Auction) error {
					a.ID = 10
					return nil
				})
				repo.EXPECT().GetItem(gomock.Any(), uint(1)).Return(model.Item{ID: 1, Name: "vase"}, nil)
			},
			check: func(t *testing.T, view model.AuctionView) {
				require.Equal(t, uint(10), view.ID)
				require.Equal(t, model.StateScheduled, view.State)
				require.Equal(t, "vase", view.ItemName)
				require.Equal(t, start, *view.StartDate)
				require.Equal(t, end, *view.EndDate)
			},
		},
		{
			name:      "active_stamps_start",
			principal: userPrincipal,
			in:        model.NewAuction{Name: "A2", Description: "d", StartDate: &start, EndDate: &end, State: ptr(model.StateActive), ItemID: 1},
			mockSetup: func(repo *repository.MockMarketDB) {
				expectTx(repo)
				repo.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().GetItem(gomock.Any(), uint(1)).Return(model.Item{ID: 1, Name: "vase"}, nil)
			},
			check: func(t *testing.T, view model.AuctionView) {
				require.Equal(t, model.StateActive, view.State)
				require.Equal(t, fixedNow, *view.StartDate)
			},
		},
		{
			name:        "end_before_start",
			principal:   userPrincipal,
			in:          model.NewAuction{Name: "A3", StartDate: &end, EndDate: &start, ItemID: 1},
			mockSetup:   func(*repository.MockMarketDB) {},
			expectedErr: marketerrors.ErrInvalidDates,
		},
		{
			name:        "start_in_past",
			principal:   userPrincipal,
			in:          model.NewAuction{Name: "A4", StartDate: ptr(fixedNow.Add(-time.Hour)), ItemID: 1},
			mockSetup:   func(*repository.MockMarketDB) {},
			expectedErr: marketerrors.ErrInvalidDates,
		},
		{
			name:        "unknown_state",
			principal:   userPrincipal,
			in:          model.NewAuction{Name: "A5", State: ptr(model.AuctionState("ABIERTA")), ItemID: 1},
			mockSetup:   func(*repository.MockMarketDB) {},
			expectedErr: marketerrors.ErrInvalidState,
		},
		{
			name:        "anonymous",
			principal:   nil,
			in:          model.NewAuction{Name: "A6", ItemID: 1},
			mockSetup:   func(*repository.MockMarketDB) {},
			expectedErr: marketerrors.ErrUnauthenticated,
		},
		{
			name:      "missing_item",
			principal: userPrincipal,
			in:        model.NewAuction{Name: "A7", ItemID: 9},
			mockSetup: func(repo *repository.MockMarketDB) {
				expectTx(repo)
				repo.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().GetItem(gomock.Any(), uint(9)).Return(model.Item{}, marketerrors.ErrNotFound)
			},
			expectedErr: marketerrors.ErrNotFound,
		},
		{
			name:      "duplicate_name",
			principal: userPrincipal,
			in:        model.NewAuction{Name: "A1", ItemID: 1},
			mockSetup: func(repo *repository.MockMarketDB) {
				expectTx(repo)
				repo.EXPECT().CreateAuction(gomock.Any(), gomock.Any()).Return(marketerrors.ErrConflict)
			},
			expectedErr: marketerrors.ErrConflict,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newTestService(t)
			tc.mockSetup(repo)

			view, err := svc.CreateAuction(context.Background(), tc.principal, tc.in)
			if tc.expectedErr != nil {
				require.True(t, errors.Is(err, tc.expectedErr), "expected error: %v, got: %v", tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, view)
		})
	}
}

func TestMarketService_UpdateAuctionLifecycle(t *testing.T) {
	t.Parallel()

	start := fixedNow.Add(time.Hour)
	end := fixedNow.Add(2 * time.Hour)
	bidder := uint(5)

	stored := func(state model.AuctionState) model.Auction {
		return model.Auction{
			ID: 10, Name: "A1", Description: "spring", StartDate: &start, EndDate: &end,
			Type: ptr("english"), State: state, ItemID: 1,
		}
	}
	item := model.Item{ID: 1, Name: "vase", FinalPrice: 150, UserID: &bidder}

	tests := []struct {
		name        string
		current     model.AuctionState
		patch       model.AuctionPatch
		stored      func(a *model.Auction)
		mockSetup   func(repo *repository.MockMarketDB)
		expectedErr error
		check       func(t *testing.T, saved model.Auction)
	}{
		{
			name:    "scheduled_to_active_sets_start",
			current: model.StateScheduled,
			patch:   model.AuctionPatch{State: ptr(model.StateActive)},
			check: func(t *testing.T, saved model.Auction) {
				require.Equal(t, model.StateActive, saved.State)
				require.Equal(t, fixedNow, *saved.StartDate)
				require.Equal(t, end, *saved.EndDate)
			},
		},
		{
			name:    "late_activation_after_end_date",
			current: model.StateScheduled,
			patch:   model.AuctionPatch{State: ptr(model.StateActive)},
			stored: func(a *model.Auction) {
				late, over := fixedNow.Add(-3*time.Hour), fixedNow.Add(-time.Hour)
				a.StartDate, a.EndDate = &late, &over
			},
			check: func(t *testing.T, saved model.Auction) {
				require.Equal(t, model.StateActive, saved.State)
				require.Equal(t, fixedNow, *saved.StartDate)
				require.Equal(t, fixedNow.Add(-time.Hour), *saved.EndDate)
			},
		},
		{
			name:    "active_stays_keeps_start",
			current: model.StateActive,
			patch:   model.AuctionPatch{State: ptr(model.StateActive), Description: ptr("updated")},
			check: func(t *testing.T, saved model.Auction) {
				require.Equal(t, start, *saved.StartDate)
				require.Equal(t, "updated", saved.Description)
			},
		},
		{
			name:    "active_to_finished_creates_one_payment",
			current: model.StateActive,
			patch:   model.AuctionPatch{State: ptr(model.StateFinished)},
			mockSetup: func(repo *repository.MockMarketDB) {
				repo.EXPECT().GetItemForUpdate(gomock.Any(), uint(1)).Return(item, nil)
				repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *model.Payment) error {
					require.Equal(t, 150.0, p.Amount)
					require.Equal(t, uint(1), p.ItemID)
					require.Equal(t, bidder, p.UserID)
					require.Equal(t, DefaultPaymentMethod, p.Method)
					require.Equal(t, model.PaymentPending, p.State)
					require.Equal(t, fixedNow, p.Date)
					return nil
				}).Times(1)
			},
			check: func(t *testing.T, saved model.Auction) {
				require.Equal(t, model.StateFinished, saved.State)
			},
		},
		{
			name:    "scheduled_to_finished_creates_payment",
			current: model.StateScheduled,
			patch:   model.AuctionPatch{State: ptr(model.StateFinished)},
			mockSetup: func(repo *repository.MockMarketDB) {
				repo.EXPECT().GetItemForUpdate(gomock.Any(), uint(1)).Return(item, nil)
				repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, saved model.Auction) {
				require.Equal(t, model.StateFinished, saved.State)
			},
		},
		{
			name:    "finish_without_bidder_skips_payment",
			current: model.StateActive,
			patch:   model.AuctionPatch{State: ptr(model.StateFinished)},
			mockSetup: func(repo *repository.MockMarketDB) {
				repo.EXPECT().GetItemForUpdate(gomock.Any(), uint(1)).Return(model.Item{ID: 1, Name: "vase", FinalPrice: 20}, nil)
			},
			check: func(t *testing.T, saved model.Auction) {
				require.Equal(t, model.StateFinished, saved.State)
			},
		},
		{
			name:    "finished_stays_no_payment",
			current: model.StateFinished,
			patch:   model.AuctionPatch{State: ptr(model.StateFinished), Name: ptr("A1-closed")},
			check: func(t *testing.T, saved model.Auction) {
				require.Equal(t, "A1-closed", saved.Name)
			},
		},
		{
			name:    "partial_update_keeps_other_fields",
			current: model.StateScheduled,
			patch:   model.AuctionPatch{Description: ptr("autumn")},
			check: func(t *testing.T, saved model.Auction) {
				want := stored(model.StateScheduled)
				want.Description = "autumn"
				require.Equal(t, want, saved)
			},
		},
		{
			name:        "finished_to_active_rejected",
			current:     model.StateFinished,
			patch:       model.AuctionPatch{State: ptr(model.StateActive), Name: ptr("reopen"), EndDate: ptr(end.Add(time.Hour))},
			expectedErr: marketerrors.ErrInvalidTransition,
		},
		{
			name:        "finished_to_scheduled_rejected",
			current:     model.StateFinished,
			patch:       model.AuctionPatch{State: ptr(model.StateScheduled)},
			expectedErr: marketerrors.ErrInvalidTransition,
		},
		{
			name:        "active_to_scheduled_rejected",
			current:     model.StateActive,
			patch:       model.AuctionPatch{State: ptr(model.StateScheduled)},
			expectedErr: marketerrors.ErrInvalidTransition,
		},
		{
			name:        "merged_dates_reversed",
			current:     model.StateScheduled,
			patch:       model.AuctionPatch{EndDate: ptr(start.Add(-time.Minute))},
			expectedErr: marketerrors.ErrInvalidDates,
		},
		{
			name:    "payment_failure_fails_update",
			current: model.StateActive,
			patch:   model.AuctionPatch{State: ptr(model.StateFinished)},
			mockSetup: func(repo *repository.MockMarketDB) {
				repo.EXPECT().GetItemForUpdate(gomock.Any(), uint(1)).Return(item, nil)
				repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(marketerrors.ErrStorage)
			},
			expectedErr: marketerrors.ErrStorage,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newTestService(t)
			expectTx(repo)
			current := stored(tc.current)
			if tc.stored != nil {
				tc.stored(&current)
			}
			repo.EXPECT().GetAuctionForUpdate(gomock.Any(), uint(10)).Return(current, nil)

			var saved model.Auction
			if tc.expectedErr == nil || tc.mockSetup != nil {
				repo.EXPECT().UpdateAuction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *model.Auction) error {
					saved = *a
					return nil
				})
			}
			if tc.mockSetup != nil {
				tc.mockSetup(repo)
			}
			// a finish already loaded the item, so its name is not read again
			finishing := tc.patch.State != nil && *tc.patch.State == model.StateFinished && tc.current != model.StateFinished
			if tc.expectedErr == nil && !finishing {
				repo.EXPECT().GetItem(gomock.Any(), uint(1)).Return(model.Item{ID: 1, Name: "vase"}, nil)
			}

			view, err := svc.UpdateAuction(context.Background(), userPrincipal, 10, tc.patch)
			if tc.expectedErr != nil {
				require.True(t, errors.Is(err, tc.expectedErr), "expected error: %v, got: %v", tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, saved.State, view.State)
			require.Equal(t, "vase", view.ItemName)
			tc.check(t, saved)
		})
	}
}

func TestMarketService_UpdateAuctionGuards(t *testing.T) {
	t.Parallel()

	t.Run("unknown_state_before_any_read", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.UpdateAuction(context.Background(), userPrincipal, 10, model.AuctionPatch{State: ptr(model.AuctionState("done"))})
		require.ErrorIs(t, err, marketerrors.ErrInvalidState)
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		_, err := svc.UpdateAuction(context.Background(), nil, 10, model.AuctionPatch{})
		require.ErrorIs(t, err, marketerrors.ErrUnauthenticated)
	})

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		expectTx(repo)
		repo.EXPECT().GetAuctionForUpdate(gomock.Any(), uint(99)).Return(model.Auction{}, marketerrors.ErrNotFound)
		_, err := svc.UpdateAuction(context.Background(), userPrincipal, 99, model.AuctionPatch{})
		require.ErrorIs(t, err, marketerrors.ErrNotFound)
	})
}

func TestMarketService_ListAuctions(t *testing.T) {
	t.Parallel()

	t.Run("resolves_each_item_once", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().ListAuctions(gomock.Any()).Return([]model.Auction{
			{ID: 1, Name: "A1", ItemID: 7, State: model.StateScheduled},
			{ID: 2, Name: "A2", ItemID: 7, State: model.StateActive},
		}, nil)
		repo.EXPECT().GetItem(gomock.Any(), uint(7)).Return(model.Item{ID: 7, Name: "lamp"}, nil).Times(1)

		views, err := svc.ListAuctions(context.Background(), userPrincipal)
		require.NoError(t, err)
		require.Len(t, views, 2)
		require.Equal(t, "lamp", views[0].ItemName)
		require.Equal(t, "lamp", views[1].ItemName)
	})

	t.Run("dangling_reference_fails_whole_list", func(t *testing.T) {
		t.Parallel()
		svc, repo := newTestService(t)
		repo.EXPECT().ListAuctions(gomock.Any()).Return([]model.Auction{
			{ID: 1, Name: "A1", ItemID: 7},
			{ID: 2, Name: "A2", ItemID: 8},
		}, nil)
		repo.EXPECT().GetItem(gomock.Any(), uint(7)).Return(model.Item{ID: 7, Name: "lamp"}, nil)
		repo.EXPECT().GetItem(gomock.Any(), uint(8)).Return(model.Item{}, marketerrors.ErrNotFound)

		views, err := svc.ListAuctions(context.Background(), userPrincipal)
		require.ErrorIs(t, err, marketerrors.ErrNotFound)
		require.Nil(t, views)
	})
}
