package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Game is a catalog entry. Despite the name it also covers consoles and
// accessories, distinguished by Category ("juegos", "consolas", "accesorios").
type Game struct {
	gorm.Model
	Title       string         `json:"title" binding:"required"`
	Price       int            `json:"price" binding:"required"`
	Image       string         `json:"image"`
	Platform    string         `json:"platform"`
	Genre       string         `json:"genre"`
	Developer   string         `json:"developer"`
	Description string         `json:"description"`
	Stock       int            `json:"stock" gorm:"default:1"`
	Category    string         `json:"category" gorm:"default:juegos"`
	OnSale      bool           `json:"onSale"`
	SalePrice   int            `json:"salePrice"`
	Gallery     datatypes.JSON `json:"gallery"`
}

// GameFilter narrows catalog listings. Zero values mean "no filter".
type GameFilter struct {
	Category string
	Platform string
	OnSale   bool
}
