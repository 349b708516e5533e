package market

import (
	"time"

	"auction-marketplace/internal/repository"
)

// DefaultPaymentMethod settles finished auctions when no method is configured
const DefaultPaymentMethod = "TRANSFER"

// MarketService implements the marketplace business logic on top of MarketDB
type MarketService struct {
	repo          repository.MarketDB
	paymentMethod string
	now           func() time.Time
}

// NewMarketService creates a new MarketService instance
func NewMarketService(repo repository.MarketDB, paymentMethod string) *MarketService {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}
	return &MarketService{
		repo:          repo,
		paymentMethod: paymentMethod,
		now:           func() time.Time { return time.Now().UTC() },
	}
}
