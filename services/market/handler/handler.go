package handler

import (
	"context"

	"auction-marketplace/internal/identity"
	model "auction-marketplace/internal/models"
)

//go:generate mockgen -source=handler.go -destination=mock_handler.go -package=handler

type IdentityServiceInterface interface {
	Login(ctx context.Context, email, password string) (model.Token, error)
	Register(ctx context.Context, in model.NewUser) (model.UserView, error)
}

type MarketServiceInterface interface {
	ListUsers(ctx context.Context, p *identity.Principal) ([]model.UserView, error)
	GetUser(ctx context.Context, p *identity.Principal, id uint) (model.UserView, error)
	CreateAdmin(ctx context.Context, p *identity.Principal, in model.NewUser) (model.UserView, error)
	UpdateUser(ctx context.Context, p *identity.Principal, id uint, patch model.UserPatch) (model.UserView, error)
	DeleteUser(ctx context.Context, p *identity.Principal, id uint) error
	GetMe(ctx context.Context, p *identity.Principal) (model.UserView, error)
	UpdateMe(ctx context.Context, p *identity.Principal, patch model.UserPatch) (model.UserView, error)

	ListCategories(ctx context.Context, p *identity.Principal) ([]model.CategoryView, error)
	GetCategory(ctx context.Context, p *identity.Principal, id uint) (model.CategoryView, error)
	CreateCategory(ctx context.Context, p *identity.Principal, name string) (model.CategoryView, error)
	UpdateCategory(ctx context.Context, p *identity.Principal, id uint, name *string) (model.CategoryView, error)
	DeleteCategory(ctx context.Context, p *identity.Principal, id uint) error

	ListItems(ctx context.Context, p *identity.Principal) ([]model.ItemView, error)
	GetItem(ctx context.Context, p *identity.Principal, id uint) (model.ItemView, error)
	CreateItem(ctx context.Context, p *identity.Principal, in model.NewItem) (model.ItemView, error)
	UpdateItem(ctx context.Context, p *identity.Principal, id uint, patch model.ItemPatch) (model.ItemView, error)
	DeleteItem(ctx context.Context, p *identity.Principal, id uint) error

	ListAuctions(ctx context.Context, p *identity.Principal) ([]model.AuctionView, error)
	GetAuction(ctx context.Context, p *identity.Principal, id uint) (model.AuctionView, error)
	CreateAuction(ctx context.Context, p *identity.Principal, in model.NewAuction) (model.AuctionView, error)
	UpdateAuction(ctx context.Context, p *identity.Principal, id uint, patch model.AuctionPatch) (model.AuctionView, error)
	DeleteAuction(ctx context.Context, p *identity.Principal, id uint) error

	ListBids(ctx context.Context, p *identity.Principal) ([]model.BidView, error)
	GetBid(ctx context.Context, p *identity.Principal, id uint) (model.BidView, error)
	PlaceBid(ctx context.Context, p *identity.Principal, in model.NewBid) (model.BidView, error)
	UpdateBid(ctx context.Context, p *identity.Principal, id uint, patch model.BidPatch) (model.BidView, error)
	DeleteBid(ctx context.Context, p *identity.Principal, id uint) error

	ListPayments(ctx context.Context, p *identity.Principal) ([]model.PaymentView, error)
	GetPayment(ctx context.Context, p *identity.Principal, id uint) (model.PaymentView, error)
	CreatePayment(ctx context.Context, p *identity.Principal, in model.NewPayment) (model.PaymentView, error)
	UpdatePayment(ctx context.Context, p *identity.Principal, id uint, patch model.PaymentPatch) (model.PaymentView, error)
	DeletePayment(ctx context.Context, p *identity.Principal, id uint) error
}

type MarketHandler struct {
	service MarketServiceInterface
}

func NewMarketHandler(service MarketServiceInterface) *MarketHandler {
	return &MarketHandler{service: service}
}

type AuthHandler struct {
	identity IdentityServiceInterface
}

func NewAuthHandler(identity IdentityServiceInterface) *AuthHandler {
	return &AuthHandler{identity: identity}
}
