package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/models"
)

const (
	orderStatusPending = "pending"
	addressPlaceholder = "address to be confirmed"
)

// BuildOrder turns a checkout request into an order acknowledgment. Nothing
// is persisted: the receipt exists only in the response, and the submitted
// items and total are passed through without re-checking them against the
// catalog or the live cart.
func BuildOrder(req models.OrderRequest) (*models.OrderReceipt, error) {
	if len(req.Items) == 0 {
		return nil, apperror.NewBadRequest("order items are required", nil)
	}

	address := req.Address
	if address == "" {
		address = addressPlaceholder
	}
	customer := req.Customer
	if customer == nil {
		customer = map[string]any{}
	}

	return &models.OrderReceipt{
		OrderID:  newOrderID(),
		Total:    req.Total,
		Items:    req.Items,
		Customer: customer,
		Address:  address,
		Date:     time.Now().UTC(),
		Status:   orderStatusPending,
	}, nil
}

// newOrderID yields "ORD-<unix-ms>-<random>". The random suffix keeps ids
// unique across calls landing on the same millisecond.
func newOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
