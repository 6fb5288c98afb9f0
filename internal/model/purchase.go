package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a single purchase owned by a client. Amount is stored as decimal(18,2).
type Purchase struct {
	ID           int64           `json:"id"`
	ClientID     int64           `json:"client_id"`
	Amount       decimal.Decimal `json:"amount"`
	PurchaseDate time.Time       `json:"purchase_date"`
	Description  *string         `json:"description"`
	OrderNumber  *string         `json:"order_number"`
	CreatedAt    time.Time       `json:"created_at"`

	// Client is set when the purchase was loaded together with its owner.
	Client *Client `json:"-"`
}
