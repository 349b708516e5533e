package models

import "time"

// Inputs accepted by the service layer. Patch types use nil for "keep the
// stored value".

type NewUser struct {
	Name     string
	Email    string
	Password string
	Address  *string
	Phone    *string
	Img      *string
}

type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	Address  *string
	Phone    *string
	Img      *string
}

type NewItem struct {
	Name        string
	Description string
	Img         *string
	InitPrice   float64
	CategoryID  uint
	UserID      *uint
}

type ItemPatch struct {
	Name        *string
	Description *string
	Img         *string
	FinalPrice  *float64
	CategoryID  *uint
	UserID      *uint
}

type NewAuction struct {
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Type        *string
	State       *AuctionState
	ItemID      uint
}

type AuctionPatch struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Type        *string
	State       *AuctionState
	ItemID      *uint
}

type NewBid struct {
	Amount    float64
	AuctionID uint
}

type BidPatch struct {
	Amount    *float64
	Date      *time.Time
	AuctionID *uint
	UserID    *uint
}

type NewPayment struct {
	Amount float64
	Method string
	Date   *time.Time
	State  PaymentState
	ItemID uint
	UserID uint
}

type PaymentPatch struct {
	Amount *float64
	Method *string
	Date   *time.Time
	State  *PaymentState
	ItemID *uint
	UserID *uint
}

// Token is the result of a successful login
type Token struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	UserID      uint    `json:"user_id"`
	UserName    string  `json:"user_name"`
	UserEmail   string  `json:"user_email"`
	UserRole    Role    `json:"user_role"`
	UserImg     *string `json:"user_img,omitempty"`
}
