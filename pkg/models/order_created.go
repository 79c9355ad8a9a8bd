package models

import (
	"time"

	"github.com/google/uuid"
)

const EventTypeOrderCreated = "orders.created"

type OrderItemPayload struct {
	PerfumeID string `json:"perfume_id"`
	Perfumer  string `json:"perfumer"`
	Title     string `json:"title"`
	Price     int    `json:"price"`
}

type OrderCreatedPayload struct {
	UserID     string             `json:"user_id"`
	Email      string             `json:"email"`
	TotalPrice int                `json:"total_price"`
	Items      []OrderItemPayload `json:"items"`
}

func NewOrderCreatedEvent(o Order) Event[OrderCreatedPayload] {
	items := make([]OrderItemPayload, 0, len(o.Perfumes))
	for _, p := range o.Perfumes {
		items = append(items, OrderItemPayload{
			PerfumeID: p.ID, Perfumer: p.Perfumer, Title: p.Title, Price: p.Price,
		})
	}
	return Event[OrderCreatedPayload]{
		ID:      uuid.NewString(),
		Type:    EventTypeOrderCreated,
		Version: 1,
		Time:    time.Now(),
		OrderID: o.ID,
		Payload: OrderCreatedPayload{
			UserID:     o.UserID,
			Email:      o.Email,
			TotalPrice: o.TotalPrice,
			Items:      items,
		},
	}
}
