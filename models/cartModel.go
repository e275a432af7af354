package models

import "gorm.io/gorm"

// Cart is the per-user aggregate. One cart per user, created lazily on the
// first add and emptied (never deleted) by clear.
type Cart struct {
	gorm.Model
	UserID uint       `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem holds one (game, quantity) line. The unique (cart_id, game_id)
// index backs the at-most-one-line-per-game invariant at the store level.
type CartItem struct {
	gorm.Model
	CartID   uint `json:"-" gorm:"uniqueIndex:idx_cart_items_cart_game"`
	GameID   uint `json:"gameId" gorm:"uniqueIndex:idx_cart_items_cart_game"`
	Quantity int  `json:"quantity" gorm:"default:1"`
	Game     Game `json:"game" gorm:"foreignKey:GameID"`
}
