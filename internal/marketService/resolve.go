package market

import (
	"context"
	"fmt"

	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"

	lru "github.com/hashicorp/golang-lru"
)

const resolverCacheSize = 512

type refKind string

const (
	refUser     refKind = "user"
	refCategory refKind = "category"
	refItem     refKind = "item"
	refAuction  refKind = "auction"
)

type refKey struct {
	kind refKind
	id   uint
}

// resolver turns foreign keys into display names. One resolver serves one
// response so a list touching the same row many times reads it once.
type resolver struct {
	repo  repository.MarketDB
	names *lru.Cache
}

func newResolver(repo repository.MarketDB) *resolver {
	// lru.New only fails for a non-positive size
	names, _ := lru.New(resolverCacheSize)
	return &resolver{repo: repo, names: names}
}

func (r *resolver) name(ctx context.Context, kind refKind, id uint) (string, error) {
	key := refKey{kind: kind, id: id}
	if v, ok := r.names.Get(key); ok {
		return v.(string), nil
	}

	var (
		name string
		err  error
	)
	switch kind {
	case refUser:
		var u model.User
		u, err = r.repo.GetUser(ctx, id)
		name = u.Name
	case refCategory:
		var c model.Category
		c, err = r.repo.GetCategory(ctx, id)
		name = c.Name
	case refItem:
		var i model.Item
		i, err = r.repo.GetItem(ctx, id)
		name = i.Name
	case refAuction:
		var a model.Auction
		a, err = r.repo.GetAuction(ctx, id)
		name = a.Name
	default:
		return "", fmt.Errorf("resolve: unknown reference kind %q", kind)
	}
	if err != nil {
		return "", fmt.Errorf("resolve %s %d: %w", kind, id, err)
	}

	r.names.Add(key, name)
	return name, nil
}

// remember seeds the cache with a name already at hand
func (r *resolver) remember(kind refKind, id uint, name string) {
	r.names.Add(refKey{kind: kind, id: id}, name)
}

func (r *resolver) item(ctx context.Context, item model.Item) (model.ItemView, error) {
	categoryName, err := r.name(ctx, refCategory, item.CategoryID)
	if err != nil {
		return model.ItemView{}, err
	}
	var userName *string
	if item.UserID != nil {
		name, err := r.name(ctx, refUser, *item.UserID)
		if err != nil {
			return model.ItemView{}, err
		}
		userName = &name
	}
	return model.ItemView{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		Img:          item.Img,
		InitPrice:    item.InitPrice,
		FinalPrice:   item.FinalPrice,
		CategoryName: categoryName,
		UserName:     userName,
	}, nil
}

func (r *resolver) auction(ctx context.Context, auction model.Auction) (model.AuctionView, error) {
	itemName, err := r.name(ctx, refItem, auction.ItemID)
	if err != nil {
		return model.AuctionView{}, err
	}
	return model.AuctionView{
		ID:          auction.ID,
		Name:        auction.Name,
		Description: auction.Description,
		StartDate:   auction.StartDate,
		EndDate:     auction.EndDate,
		Type:        auction.Type,
		State:       auction.State,
		ItemName:    itemName,
	}, nil
}

func (r *resolver) bid(ctx context.Context, bid model.Bid) (model.BidView, error) {
	auctionName, err := r.name(ctx, refAuction, bid.AuctionID)
	if err != nil {
		return model.BidView{}, err
	}
	userName, err := r.name(ctx, refUser, bid.UserID)
	if err != nil {
		return model.BidView{}, err
	}
	return model.BidView{
		ID:          bid.ID,
		Amount:      bid.Amount,
		Date:        bid.Date,
		AuctionName: auctionName,
		UserName:    userName,
	}, nil
}

func (r *resolver) payment(ctx context.Context, payment model.Payment) (model.PaymentView, error) {
	itemName, err := r.name(ctx, refItem, payment.ItemID)
	if err != nil {
		return model.PaymentView{}, err
	}
	userName, err := r.name(ctx, refUser, payment.UserID)
	if err != nil {
		return model.PaymentView{}, err
	}
	return model.PaymentView{
		ID:       payment.ID,
		Amount:   payment.Amount,
		Method:   payment.Method,
		Date:     payment.Date,
		State:    payment.State,
		ItemName: itemName,
		UserName: userName,
	}, nil
}

// resolveAll converts every row or fails as a whole
func resolveAll[T, V any](ctx context.Context, rows []T, convert func(context.Context, T) (V, error)) ([]V, error) {
	views := make([]V, 0, len(rows))
	for _, row := range rows {
		v, err := convert(ctx, row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
