package model

import "time"

// Product is a catalogue entry managed by administrators.
type Product struct {
	ID           int64
	UserID       int64
	Name         string
	Image        string
	Brand        string
	Category     string
	Description  string
	Price        float64
	CountInStock int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
