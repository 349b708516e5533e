package helpers

import (
	"time"

	model "auction-marketplace/internal/models"
)

// Request DTOs. Update requests use pointers so omitted fields keep their
// stored value.

// LoginRequest accepts JSON or an OAuth2 password form (username = email)
type LoginRequest struct {
	Email    string `json:"email" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=5"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone" binding:"omitempty,max=15"`
	Img      *string `json:"img"`
}

func (r RegisterRequest) ToModel() model.NewUser {
	return model.NewUser{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Address:  r.Address,
		Phone:    r.Phone,
		Img:      r.Img,
	}
}

type UserUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=5"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone" binding:"omitempty,max=15"`
	Img      *string `json:"img"`
}

func (r UserUpdateRequest) ToModel() model.UserPatch {
	return model.UserPatch{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Address:  r.Address,
		Phone:    r.Phone,
		Img:      r.Img,
	}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryUpdateRequest struct {
	Name *string `json:"name"`
}

type ItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Img         *string `json:"img"`
	InitPrice   float64 `json:"init_price" binding:"gte=0"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	UserID      *uint   `json:"user_id"`
}

func (r ItemRequest) ToModel() model.NewItem {
	return model.NewItem{
		Name:        r.Name,
		Description: r.Description,
		Img:         r.Img,
		InitPrice:   r.InitPrice,
		CategoryID:  r.CategoryID,
		UserID:      r.UserID,
	}
}

type ItemUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Img         *string  `json:"img"`
	FinalPrice  *float64 `json:"final_price" binding:"omitempty,gte=0"`
	CategoryID  *uint    `json:"category_id"`
	UserID      *uint    `json:"user_id"`
}

func (r ItemUpdateRequest) ToModel() model.ItemPatch {
	return model.ItemPatch{
		Name:        r.Name,
		Description: r.Description,
		Img:         r.Img,
		FinalPrice:  r.FinalPrice,
		CategoryID:  r.CategoryID,
		UserID:      r.UserID,
	}
}

type AuctionRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	StartDate   *time.Time          `json:"start_date"`
	EndDate     *time.Time          `json:"end_date"`
	Type        *string             `json:"type"`
	State       *model.AuctionState `json:"state"`
	ItemID      uint                `json:"item_id" binding:"required"`
}

func (r AuctionRequest) ToModel() model.NewAuction {
	return model.NewAuction{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Type:        r.Type,
		State:       r.State,
		ItemID:      r.ItemID,
	}
}

type AuctionUpdateRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	StartDate   *time.Time          `json:"start_date"`
	EndDate     *time.Time          `json:"end_date"`
	Type        *string             `json:"type"`
	State       *model.AuctionState `json:"state"`
	ItemID      *uint               `json:"item_id"`
}

func (r AuctionUpdateRequest) ToModel() model.AuctionPatch {
	return model.AuctionPatch{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Type:        r.Type,
		State:       r.State,
		ItemID:      r.ItemID,
	}
}

// BidRequest carries no user: the bidder is always the caller
type BidRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	AuctionID uint    `json:"auction_id" binding:"required"`
}

func (r BidRequest) ToModel() model.NewBid {
	return model.NewBid{Amount: r.Amount, AuctionID: r.AuctionID}
}

type BidUpdateRequest struct {
	Amount    *float64   `json:"amount" binding:"omitempty,gt=0"`
	Date      *time.Time `json:"date"`
	AuctionID *uint      `json:"auction_id"`
	UserID    *uint      `json:"user_id"`
}

func (r BidUpdateRequest) ToModel() model.BidPatch {
	return model.BidPatch{
		Amount:    r.Amount,
		Date:      r.Date,
		AuctionID: r.AuctionID,
		UserID:    r.UserID,
	}
}

type PaymentRequest struct {
	Amount float64            `json:"amount" binding:"gte=0"`
	Method string             `json:"method"`
	Date   *time.Time         `json:"date"`
	State  model.PaymentState `json:"state"`
	ItemID uint               `json:"item_id" binding:"required"`
	UserID uint               `json:"user_id" binding:"required"`
}

func (r PaymentRequest) ToModel() model.NewPayment {
	return model.NewPayment{
		Amount: r.Amount,
		Method: r.Method,
		Date:   r.Date,
		State:  r.State,
		ItemID: r.ItemID,
		UserID: r.UserID,
	}
}

type PaymentUpdateRequest struct {
	Amount *float64            `json:"amount" binding:"omitempty,gte=0"`
	Method *string             `json:"method"`
	Date   *time.Time          `json:"date"`
	State  *model.PaymentState `json:"state"`
	ItemID *uint               `json:"item_id"`
	UserID *uint               `json:"user_id"`
}

func (r PaymentUpdateRequest) ToModel() model.PaymentPatch {
	return model.PaymentPatch{
		Amount: r.Amount,
		Method: r.Method,
		Date:   r.Date,
		State:  r.State,
		ItemID: r.ItemID,
		UserID: r.UserID,
	}
}
