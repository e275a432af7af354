package models

import "time"

// OrderItem mirrors a cart line at checkout time. The workflow passes the
// caller's items through verbatim; it does not re-validate against the catalog.
type OrderItem struct {
	GameID   uint   `json:"gameId"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

type OrderRequest struct {
	Items    []OrderItem    `json:"items"`
	Total    int            `json:"total"`
	Address  string         `json:"address"`
	Customer map[string]any `json:"customer"`
}

// OrderReceipt is the acknowledgment returned to the caller. Orders are not
// persisted; this is the only place one ever exists.
type OrderReceipt struct {
	OrderID  string         `json:"orderId"`
	Total    int            `json:"total"`
	Items    []OrderItem    `json:"items"`
	Customer map[string]any `json:"customer"`
	Address  string         `json:"address"`
	Date     time.Time      `json:"date"`
	Status   string         `json:"status"`
}
