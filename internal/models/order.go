package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	Name       string  `json:"item_name"`
	UnitPrice  float64 `json:"item_price"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	ItemType   string  `json:"item_type,omitempty"`
	Rating     string  `json:"rating,omitempty"`
}

// Order is an immutable value record. Stages that need to change an
// order (e.g. date backfill) work on derived copies; the originals
// supplied by the order store are never mutated.
type Order struct {
	ID              int         `json:"order_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerAddress string      `json:"customer_address"`
	Items           []OrderItem `json:"items"`
	OrderType       string      `json:"order_type"`
	OrderStatus     string      `json:"order_status"`
	DeliveryPerson  string      `json:"delivery_person,omitempty"`
	OrderDate       *time.Time  `json:"order_date,omitempty"`
}

// Total sums the item totals. Item TotalPrice is authoritative and is
// not recomputed from UnitPrice*Quantity.
func (o Order) Total() float64 {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(decimal.NewFromFloat(item.TotalPrice))
	}
	total, _ := sum.Float64()
	return total
}
