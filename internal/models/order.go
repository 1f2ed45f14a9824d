package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus int

const (
	OrderPending    OrderStatus = 0
	OrderProcessing OrderStatus = 1
	OrderShipping   OrderStatus = 2
	OrderCompleted  OrderStatus = 3
)

func (s OrderStatus) Valid() bool {
	return s >= OrderPending && s <= OrderCompleted
}

// Order is a sale of one product. DropshipperID is nil for direct sales.
type Order struct {
	ID            uuid.UUID   `json:"id"`
	ProductID     uuid.UUID   `json:"productId"`
	DropshipperID *uuid.UUID  `json:"dropshipperId,omitempty"`
	Quantity      int         `json:"quantity"`
	Volume        float64     `json:"volume"`
	Weight        float64     `json:"weight"`
	LocationX     float64     `json:"locationX"`
	LocationY     float64     `json:"locationY"`
	Status        OrderStatus `json:"status"`
	TimeCreated   time.Time   `json:"timeCreated"`
	Note          string      `json:"note,omitempty"`
}
