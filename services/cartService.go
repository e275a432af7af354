// Package services holds the cart and order workflows on top of the store
// interfaces, so both can be tested against in-memory fakes.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/models"
	"github.com/viplat/gamehub-api/stores"
)

// CartService owns the cart aggregate rules: at most one line item per game,
// quantities merged on repeat adds, strict not-found on removal, soft-empty
// on get.
type CartService struct {
	games stores.GameStore
	carts stores.CartStore
}

func NewCartService(games stores.GameStore, carts stores.CartStore) *CartService {
	return &CartService{games: games, carts: carts}
}

// Get returns the user's cart with game display fields expanded. A user with
// no cart gets an empty-items cart, not an error; client code depends on that.
func (s *CartService) Get(ctx context.Context, userID uint) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, stores.ErrNotFound) {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}
	if err != nil {
		return nil, apperror.NewInternal("failed to fetch cart", err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// AddItem validates the game, finds or creates the user's cart and merges the
// line. The increment is a single atomic statement at the store level and the
// insert path retries as an increment on a unique-index conflict, so two
// concurrent adds of the same game cannot lose an increment.
func (s *CartService) AddItem(ctx context.Context, userID, gameID uint) (*models.Cart, error) {
	if _, err := s.games.Get(ctx, gameID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, apperror.NewNotFound("game not found", nil)
		}
		return nil, apperror.NewInternal("failed to validate game", err)
	}

	cart, err := s.findOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	incremented, err := s.carts.IncrementItem(ctx, cart.ID, gameID)
	if err != nil {
		return nil, apperror.NewInternal("failed to add game to cart", err)
	}
	if !incremented {
		switch err := s.carts.InsertItem(ctx, cart.ID, gameID); {
		case errors.Is(err, stores.ErrDuplicate):
			// Lost the insert race; the line exists now, so merge into it.
			if _, err := s.carts.IncrementItem(ctx, cart.ID, gameID); err != nil {
				return nil, apperror.NewInternal("failed to add game to cart", err)
			}
		case err != nil:
			return nil, apperror.NewInternal("failed to add game to cart", err)
		}
	}

	return s.Get(ctx, userID)
}

// RemoveItem drops one line item by its id. Unknown item ids are an error,
// not a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, stores.ErrNotFound) {
		return nil, apperror.NewNotFound("cart not found", nil)
	}
	if err != nil {
		return nil, apperror.NewInternal("failed to fetch cart", err)
	}

	removed, err := s.carts.RemoveItem(ctx, cart.ID, itemID)
	if err != nil {
		return nil, apperror.NewInternal("failed to remove cart item", err)
	}
	if !removed {
		return nil, apperror.NewNotFound("item not found in cart", nil)
	}

	return s.Get(ctx, userID)
}

// Clear empties an existing cart. Clearing before any add is not-found: the
// cart document only comes into existence on the first add.
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	cart, err := s.carts.FindByUser(ctx, userID)
	if errors.Is(err, stores.ErrNotFound) {
		return apperror.NewNotFound("cart not found", nil)
	}
	if err != nil {
		return apperror.NewInternal("failed to fetch cart", err)
	}

	if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
		return apperror.NewInternal("failed to clear cart", err)
	}
	return nil
}

// RemoveGameEverywhere cascades a catalog deletion into every cart.
func (s *CartService) RemoveGameEverywhere(ctx context.Context, gameID uint) error {
	if err := s.carts.RemoveGameFromAllCarts(ctx, gameID); err != nil {
		return apperror.NewInternal("failed to remove game from carts", err)
	}
	return nil
}

func (s *CartService) findOrCreateCart(ctx context.Context, userID uint) (*models.Cart, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, stores.ErrNotFound) {
		return nil, apperror.NewInternal("failed to fetch cart", err)
	}

	cart, err = s.carts.Create(ctx, userID)
	if errors.Is(err, stores.ErrDuplicate) {
		// Another request created the cart first; use theirs.
		cart, err = s.carts.FindByUser(ctx, userID)
		if err != nil {
			return nil, apperror.NewInternal("failed to fetch cart", err)
		}
		return cart, nil
	}
	if err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("failed to create cart for user %d", userID), err)
	}
	return cart, nil
}
