package models

import (
	"time"
)

// Course represents a course owned by the user who created it.
// UserID is set at creation time and cannot be changed through the API.
type Course struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	EstimatedTime   *string   `json:"estimatedTime" db:"estimated_time"`     // Nullable
	MaterialsNeeded *string   `json:"materialsNeeded" db:"materials_needed"` // Nullable
	UserID          int64     `json:"userId" db:"user_id"`
	CreatedAt       time.Time `json:"-" db:"created_at"`
	UpdatedAt       time.Time `json:"-" db:"updated_at"`

	// Relation (populated when needed)
	Owner *UserSummary `json:"owner,omitempty"`
}
