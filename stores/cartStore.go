package stores

import (
	"context"
	"errors"
	"fmt"

	"github.com/viplat/gamehub-api/models"
	"gorm.io/gorm"
)

// CartStore exposes the primitives the cart service composes. IncrementItem
// is a single atomic UPDATE so concurrent adds for the same (cart, game) can
// never lose an increment; InsertItem reports ErrDuplicate when it races with
// another insert under the unique (cart_id, game_id) index.
type CartStore interface {
	FindByUser(ctx context.Context, userID uint) (*models.Cart, error)
	Create(ctx context.Context, userID uint) (*models.Cart, error)
	IncrementItem(ctx context.Context, cartID, gameID uint) (bool, error)
	InsertItem(ctx context.Context, cartID, gameID uint) error
	RemoveItem(ctx context.Context, cartID, itemID uint) (bool, error)
	ClearItems(ctx context.Context, cartID uint) error
	RemoveGameFromAllCarts(ctx context.Context, gameID uint) error
}

type gormCartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) CartStore {
	return &gormCartStore{db: db}
}

func (s *gormCartStore) FindByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Game", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "image", "price", "platform", "category")
		}).
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return &cart, nil
}

func (s *gormCartStore) Create(ctx context.Context, userID uint) (*models.Cart, error) {
	cart := models.Cart{UserID: userID, Items: []models.CartItem{}}
	if err := s.db.WithContext(ctx).Create(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return &cart, nil
}

func (s *gormCartStore) IncrementItem(ctx context.Context, cartID, gameID uint) (bool, error) {
	result := s.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("cart_id = ? AND game_id = ?", cartID, gameID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", 1))
	if result.Error != nil {
		return false, fmt.Errorf("failed to increment cart item: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *gormCartStore) InsertItem(ctx context.Context, cartID, gameID uint) error {
	item := models.CartItem{CartID: cartID, GameID: gameID, Quantity: 1}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert cart item: %w", err)
	}
	return nil
}

func (s *gormCartStore) RemoveItem(ctx context.Context, cartID, itemID uint) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("cart_id = ? AND id = ?", cartID, itemID).
		Unscoped().
		Delete(&models.CartItem{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove cart item: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *gormCartStore) ClearItems(ctx context.Context, cartID uint) error {
	err := s.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Unscoped().
		Delete(&models.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// RemoveGameFromAllCarts backs the catalog-delete cascade: every line item
// referencing the game disappears from every user's cart.
func (s *gormCartStore) RemoveGameFromAllCarts(ctx context.Context, gameID uint) error {
	err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Unscoped().
		Delete(&models.CartItem{}).Error
	if err != nil {
		return fmt.Errorf("failed to cascade game removal into carts: %w", err)
	}
	return nil
}
