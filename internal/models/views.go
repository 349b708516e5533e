package models

import "time"

// Views are the resolved, client-facing shapes. Foreign keys are replaced by
// the referenced entity's display name.

type UserView struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address *string `json:"address,omitempty"`
	Role    Role    `json:"role"`
	Phone   *string `json:"phone,omitempty"`
	Img     *string `json:"img,omitempty"`
}

type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ItemView struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Img          *string `json:"img,omitempty"`
	InitPrice    float64 `json:"init_price"`
	FinalPrice   float64 `json:"final_price"`
	CategoryName string  `json:"category_name"`
	UserName     *string `json:"user_name"`
}

type AuctionView struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	StartDate   *time.Time   `json:"start_date"`
	EndDate     *time.Time   `json:"end_date"`
	Type        *string      `json:"type"`
	State       AuctionState `json:"state"`
	ItemName    string       `json:"item_name"`
}

type BidView struct {
	ID          uint      `json:"id"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	AuctionName string    `json:"auction_name"`
	UserName    string    `json:"user_name"`
}

type PaymentView struct {
	ID       uint         `json:"id"`
	Amount   float64      `json:"amount"`
	Method   string       `json:"method"`
	Date     time.Time    `json:"date"`
	State    PaymentState `json:"state"`
	ItemName string       `json:"item_name"`
	UserName string       `json:"user_name"`
}

// ToView strips the password hash
func (u User) ToView() UserView {
	return UserView{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Role:    u.Role,
		Phone:   u.Phone,
		Img:     u.Img,
	}
}

func (c Category) ToView() CategoryView {
	return CategoryView{ID: c.ID, Name: c.Name}
}
