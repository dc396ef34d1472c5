package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                             // Unique identifier for the user
	FirstName    string    `json:"firstName" db:"first_name" example:"Joe"`            // User's first name
	LastName     string    `json:"lastName" db:"last_name" example:"Smith"`            // User's last name
	EmailAddress string    `json:"emailAddress" db:"email_address" example:"joe@smith.com"` // User's email address, unique
	Password     string    `json:"-" db:"password"`                                    // User's hashed password (excluded from JSON)
	CreatedAt    time.Time `json:"-" db:"created_at"`                                  // Timestamp when the user was created
	UpdatedAt    time.Time `json:"-" db:"updated_at"`                                  // Timestamp when the user was last updated
}

// UserSummary is the owner projection embedded in course responses.
// It never carries the password hash or timestamps.
type UserSummary struct {
	ID           int64  `json:"id" db:"id"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	EmailAddress string `json:"emailAddress" db:"email_address"`
}

// Summary returns the public projection of the user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}
