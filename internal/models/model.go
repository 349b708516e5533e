package models

import "time"

// Role is the access level of a user
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// AuctionState is the lifecycle position of an auction
type AuctionState string

const (
	StateScheduled AuctionState = "PROGRAMADA"
	StateActive    AuctionState = "EN CURSO"
	StateFinished  AuctionState = "FINALIZADA"
)

// Valid reports whether s is one of the known lifecycle states
func (s AuctionState) Valid() bool {
	switch s {
	case StateScheduled, StateActive, StateFinished:
		return true
	}
	return false
}

// PaymentState is the settlement status of a payment
type PaymentState string

const (
	PaymentPending   PaymentState = "PENDING"
	PaymentCompleted PaymentState = "COMPLETED"
	PaymentCancelled PaymentState = "CANCELLED"
)

func (s PaymentState) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentCancelled:
		return true
	}
	return false
}

// User represents a participant of the marketplace
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:100;uniqueIndex;not null"`
	Password  string    `gorm:"size:255;not null"`
	Role      Role      `gorm:"size:50;not null"`
	Address   *string   `gorm:"size:255"`
	Phone     *string   `gorm:"size:15"`
	CreatedAt time.Time
	Img       *string `gorm:"type:text"`
}

// Category groups items
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;uniqueIndex;not null"`
}

// Item is the good being auctioned. UserID tracks the current high bidder.
type Item struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:255;uniqueIndex;not null"`
	Description string  `gorm:"size:255;not null"`
	Img         *string `gorm:"type:text"`
	CreatedAt   time.Time
	InitPrice   float64 `gorm:"not null"`
	FinalPrice  float64
	CategoryID  uint  `gorm:"not null;index"`
	UserID      *uint `gorm:"index"`
}

// Auction represents a sale window for a single item
type Auction struct {
	ID          uint         `gorm:"primaryKey"`
	Name        string       `gorm:"size:255;uniqueIndex;not null"`
	Description string       `gorm:"size:255;not null"`
	StartDate   *time.Time
	EndDate     *time.Time
	Type        *string      `gorm:"size:255"`
	State       AuctionState `gorm:"size:255"`
	ItemID      uint         `gorm:"not null;index"`
}

// Bid represents a user's bid on an auction
type Bid struct {
	ID        uint      `gorm:"primaryKey"`
	Amount    float64   `gorm:"not null"`
	Date      time.Time `gorm:"not null"`
	AuctionID uint      `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
}

// Payment settles an item with its buyer
type Payment struct {
	ID     uint         `gorm:"primaryKey"`
	Amount float64      `gorm:"not null"`
	Method string       `gorm:"size:255;not null"`
	Date   time.Time    `gorm:"not null"`
	State  PaymentState `gorm:"size:255;not null"`
	ItemID uint         `gorm:"not null;index"`
	UserID uint         `gorm:"not null;index"`
}

// All lists every persisted model, in dependency order
func All() []any {
	return []any{&User{}, &Category{}, &Item{}, &Auction{}, &Bid{}, &Payment{}}
}
