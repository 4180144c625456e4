package dto

import "time"

// ProductRequest is the admin payload for creating or replacing a product.
type ProductRequest struct {
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"countInStock"`
}

// ProductResponse is a catalogue entry.
type ProductResponse struct {
	ID           int64     `json:"_id"`
	UserID       int64     `json:"user"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	Brand        string    `json:"brand"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CountInStock int       `json:"countInStock"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
