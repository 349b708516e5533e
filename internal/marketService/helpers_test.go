package market

import (
	"context"
	"testing"
	"time"

	"auction-marketplace/internal/identity"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	"github.com/golang/mock/gomock"
)

var (
	fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	adminPrincipal = &identity.Principal{ID: 1, Name: "root", Email: "root@example.com", Role: model.RoleAdmin}
	userPrincipal  = &identity.Principal{ID: 2, Name: "ana", Email: "ana@example.com", Role: model.RoleUser}
)

func newTestService(t *testing.T) (*MarketService, *repository.MockMarketDB) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := repository.NewMockMarketDB(ctrl)
	svc := NewMarketService(repo, "")
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

// expectTx runs the transaction body against the same mock
func expectTx(repo *repository.MockMarketDB) {
	repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(repository.MarketDB) error) error {
			return fn(repo)
		})
}

func ptr[T any](v T) *T { return &v }
