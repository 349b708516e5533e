package perftests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"auction-marketplace/internal/config"
	"auction-marketplace/internal/database"
	"auction-marketplace/internal/identity"
	market "auction-marketplace/internal/marketService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/utils"

	"github.com/google/uuid"
)

func init() {
	utils.SetLevel("error")
}

// fixture is a marketplace seeded with running auctions and bidders
type fixture struct {
	repo     *repository.GormRepo
	svc      *market.MarketService
	auctions []model.Auction
	items    []uint
	bidders  []*identity.Principal
}

func setupMarket(b *testing.B, numAuctions, numUsers int) *fixture {
	b.Helper()
	ctx := context.Background()

	db, err := database.Open(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		URL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	})
	if err != nil {
		b.Fatalf("failed to open database: %v", err)
	}
	b.Cleanup(func() { _ = database.Close(db) })

	repo := repository.NewGormRepo(db)
	f := &fixture{repo: repo, svc: market.NewMarketService(repo, market.DefaultPaymentMethod)}

	category := model.Category{Name: "bench"}
	if err := repo.CreateCategory(ctx, &category); err != nil {
		b.Fatalf("failed to seed category: %v", err)
	}

	for i := 0; i < numAuctions; i++ {
		item := model.Item{
			Name:       fmt.Sprintf("item_%d", i),
			InitPrice:  100,
			FinalPrice: 100,
			CategoryID: category.ID,
			CreatedAt:  time.Now().UTC(),
		}
		if err := repo.CreateItem(ctx, &item); err != nil {
			b.Fatalf("failed to seed item: %v", err)
		}
		now := time.Now().UTC()
		auction := model.Auction{
			Name:      fmt.Sprintf("auction_%d", i),
			StartDate: &now,
			State:     model.StateActive,
			ItemID:    item.ID,
		}
		if err := repo.CreateAuction(ctx, &auction); err != nil {
			b.Fatalf("failed to seed auction: %v", err)
		}
		f.items = append(f.items, item.ID)
		f.auctions = append(f.auctions, auction)
	}

	for i := 0; i < numUsers; i++ {
		user := model.User{
			Name:     fmt.Sprintf("user_%d", i),
			Email:    fmt.Sprintf("user_%d@example.com", i),
			Password: "x",
			Role:     model.RoleUser,
		}
		if err := repo.CreateUser(ctx, &user); err != nil {
			b.Fatalf("failed to seed user: %v", err)
		}
		f.bidders = append(f.bidders, identity.FromUser(user))
	}
	return f
}
