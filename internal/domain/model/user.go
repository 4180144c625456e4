package model

import "time"

// User represents a registered shop customer or administrator.
// PasswordHash only ever holds a bcrypt digest.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileUpdate carries optional profile changes. A nil Password keeps the stored hash.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}
