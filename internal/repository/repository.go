package repository

import (
	"context"
	"errors"
	"fmt"

	"auction-marketplace/internal/marketerrors"
	model "auction-marketplace/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// MarketDB defines the storage interface for the marketplace
type MarketDB interface {
	// Transaction runs fn inside one unit of work. fn must only use the
	// MarketDB it is handed; any returned error rolls everything back.
	Transaction(ctx context.Context, fn func(tx MarketDB) error) error

	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint) error

	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id uint) (model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id uint) error

	ListItems(ctx context.Context) ([]model.Item, error)
	GetItem(ctx context.Context, id uint) (model.Item, error)
	GetItemForUpdate(ctx context.Context, id uint) (model.Item, error)
	CreateItem(ctx context.Context, item *model.Item) error
	UpdateItem(ctx context.Context, item *model.Item) error
	DeleteItem(ctx context.Context, id uint) error
	// AddToItemPrice atomically adds amount to final_price and records bidderID as the item's user
	AddToItemPrice(ctx context.Context, itemID uint, amount float64, bidderID uint) error

	ListAuctions(ctx context.Context) ([]model.Auction, error)
	GetAuction(ctx context.Context, id uint) (model.Auction, error)
	GetAuctionForUpdate(ctx context.Context, id uint) (model.Auction, error)
	CreateAuction(ctx context.Context, auction *model.Auction) error
	UpdateAuction(ctx context.Context, auction *model.Auction) error
	DeleteAuction(ctx context.Context, id uint) error

	ListBids(ctx context.Context) ([]model.Bid, error)
	GetBid(ctx context.Context, id uint) (model.Bid, error)
	CreateBid(ctx context.Context, bid *model.Bid) error
	UpdateBid(ctx context.Context, bid *model.Bid) error
	DeleteBid(ctx context.Context, id uint) error

	ListPayments(ctx context.Context) ([]model.Payment, error)
	GetPayment(ctx context.Context, id uint) (model.Payment, error)
	CreatePayment(ctx context.Context, payment *model.Payment) error
	UpdatePayment(ctx context.Context, payment *model.Payment) error
	DeletePayment(ctx context.Context, id uint) error
}

// GormRepo is the relational implementation of MarketDB
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo creates a repository over an open connection pool
func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{db: db}
}

// Transaction runs fn in a database transaction, committing on success
func (r *GormRepo) Transaction(ctx context.Context, fn func(tx MarketDB) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepo{db: tx})
	})
}

// classify maps driver errors onto the marketplace taxonomy
func classify(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, marketerrors.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w", op, marketerrors.ErrConflict)
	default:
		return fmt.Errorf("%s: %w: %w", op, marketerrors.ErrStorage, err)
	}
}

func list[T any](ctx context.Context, db *gorm.DB, op string) ([]T, error) {
	var rows []T
	if err := db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, classify(op, err)
	}
	return rows, nil
}

func get[T any](ctx context.Context, db *gorm.DB, op string, id uint) (T, error) {
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		var zero T
		return zero, classify(fmt.Sprintf("%s %d", op, id), err)
	}
	return row, nil
}

func getLocked[T any](ctx context.Context, db *gorm.DB, op string, id uint) (T, error) {
	return get[T](ctx, db.Clauses(clause.Locking{Strength: "UPDATE"}), op, id)
}

func create(ctx context.Context, db *gorm.DB, op string, row any) error {
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return classify(op, err)
	}
	return nil
}

func save(ctx context.Context, db *gorm.DB, op string, row any) error {
	if err := db.WithContext(ctx).Save(row).Error; err != nil {
		return classify(op, err)
	}
	return nil
}

func remove[T any](ctx context.Context, db *gorm.DB, op string, id uint) error {
	res := db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return classify(fmt.Sprintf("%s %d", op, id), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", op, id, marketerrors.ErrNotFound)
	}
	return nil
}

func (r *GormRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	return list[model.User](ctx, r.db, "list users")
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (model.User, error) {
	return get[model.User](ctx, r.db, "get user", id)
}

// GetUserByEmail looks a user up by its unique email
func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return model.User{}, classify("get user by email", err)
	}
	return user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *model.User) error {
	return create(ctx, r.db, "create user", user)
}

func (r *GormRepo) UpdateUser(ctx context.Context, user *model.User) error {
	return save(ctx, r.db, "update user", user)
}

func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	return remove[model.User](ctx, r.db, "delete user", id)
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	return list[model.Category](ctx, r.db, "list categories")
}

func (r *GormRepo) GetCategory(ctx context.Context, id uint) (model.Category, error) {
	return get[model.Category](ctx, r.db, "get category", id)
}

func (r *GormRepo) CreateCategory(ctx context.Context, category *model.Category) error {
	return create(ctx, r.db, "create category", category)
}

func (r *GormRepo) UpdateCategory(ctx context.Context, category *model.Category) error {
	return save(ctx, r.db, "update category", category)
}

func (r *GormRepo) DeleteCategory(ctx context.Context, id uint) error {
	return remove[model.Category](ctx, r.db, "delete category", id)
}

func (r *GormRepo) ListItems(ctx context.Context) ([]model.Item, error) {
	return list[model.Item](ctx, r.db, "list items")
}

func (r *GormRepo) GetItem(ctx context.Context, id uint) (model.Item, error) {
	return get[model.Item](ctx, r.db, "get item", id)
}

// GetItemForUpdate reads the item holding a row lock until the transaction ends
func (r *GormRepo) GetItemForUpdate(ctx context.Context, id uint) (model.Item, error) {
	return getLocked[model.Item](ctx, r.db, "get item for update", id)
}

func (r *GormRepo) CreateItem(ctx context.Context, item *model.Item) error {
	return create(ctx, r.db, "create item", item)
}

func (r *GormRepo) UpdateItem(ctx context.Context, item *model.Item) error {
	return save(ctx, r.db, "update item", item)
}

func (r *GormRepo) DeleteItem(ctx context.Context, id uint) error {
	return remove[model.Item](ctx, r.db, "delete item", id)
}

// AddToItemPrice performs the increment in SQL so concurrent bids cannot
// overwrite each other.
func (r *GormRepo) AddToItemPrice(ctx context.Context, itemID uint, amount float64, bidderID uint) error {
	res := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", itemID).
		Updates(map[string]any{
			"final_price": gorm.Expr("final_price + ?", amount),
			"user_id":     bidderID,
		})
	if res.Error != nil {
		return classify(fmt.Sprintf("add to price of item %d", itemID), res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("add to price of item %d: %w", itemID, marketerrors.ErrNotFound)
	}
	return nil
}

func (r *GormRepo) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	return list[model.Auction](ctx, r.db, "list auctions")
}

func (r *GormRepo) GetAuction(ctx context.Context, id uint) (model.Auction, error) {
	return get[model.Auction](ctx, r.db, "get auction", id)
}

// GetAuctionForUpdate reads the auction holding a row lock. Bid placement and
// state transitions both take it, so they serialize per auction.
func (r *GormRepo) GetAuctionForUpdate(ctx context.Context, id uint) (model.Auction, error) {
	return getLocked[model.Auction](ctx, r.db, "get auction for update", id)
}

func (r *GormRepo) CreateAuction(ctx context.Context, auction *model.Auction) error {
	return create(ctx, r.db, "create auction", auction)
}

func (r *GormRepo) UpdateAuction(ctx context.Context, auction *model.Auction) error {
	return save(ctx, r.db, "update auction", auction)
}

func (r *GormRepo) DeleteAuction(ctx context.Context, id uint) error {
	return remove[model.Auction](ctx, r.db, "delete auction", id)
}

func (r *GormRepo) ListBids(ctx context.Context) ([]model.Bid, error) {
	return list[model.Bid](ctx, r.db, "list bids")
}

func (r *GormRepo) GetBid(ctx context.Context, id uint) (model.Bid, error) {
	return get[model.Bid](ctx, r.db, "get bid", id)
}

func (r *GormRepo) CreateBid(ctx context.Context, bid *model.Bid) error {
	return create(ctx, r.db, "create bid", bid)
}

func (r *GormRepo) UpdateBid(ctx context.Context, bid *model.Bid) error {
	return save(ctx, r.db, "update bid", bid)
}

func (r *GormRepo) DeleteBid(ctx context.Context, id uint) error {
	return remove[model.Bid](ctx, r.db, "delete bid", id)
}

func (r *GormRepo) ListPayments(ctx context.Context) ([]model.Payment, error) {
	return list[model.Payment](ctx, r.db, "list payments")
}

func (r *GormRepo) GetPayment(ctx context.Context, id uint) (model.Payment, error) {
	return get[model.Payment](ctx, r.db, "get payment", id)
}

func (r *GormRepo) CreatePayment(ctx context.Context, payment *model.Payment) error {
	return create(ctx, r.db, "create payment", payment)
}

func (r *GormRepo) UpdatePayment(ctx context.Context, payment *model.Payment) error {
	return save(ctx, r.db, "update payment", payment)
}

func (r *GormRepo) DeletePayment(ctx context.Context, id uint) error {
	return remove[model.Payment](ctx, r.db, "delete payment", id)
}
