package models

import "time"

type Order struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Perfumes    []Perfume `json:"perfumes"`
	TotalPrice  int       `json:"total_price"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	PostIndex   string    `json:"post_index"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Date        time.Time `json:"date"`
}
