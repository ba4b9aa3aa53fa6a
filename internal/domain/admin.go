package domain

import "time"

// Admin is the single privileged account. The application enforces that at most
// one row exists; the schema does not.
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
