package model

import (
	"time"
)

type Order struct {
	OrderID     string     `json:"order_id,omitempty" db:"order_id"`
	EventID     *string    `json:"event_id,omitempty" db:"event_id"`
	BuyerID     *string    `json:"buyer_id,omitempty" db:"buyer_id"`
	TotalAmount *string    `json:"total_amount,omitempty" db:"total_amount"`
	CreatedAt   *time.Time `json:"created_at,omitempty" db:"created_at"`
}

type OrderWithEvent struct {
	Order
	EventTitle string `json:"event_title" db:"event_title"`
}

type OrderPage struct {
	Data       []OrderWithEvent `json:"data"`
	TotalPages int64            `json:"total_pages"`
}
