package dto

import (
	"github.com/altan/coursehub/internal/app/models"
)

// SignupRequest is the body of POST /api/users.
// Presence checks happen in the service so that all failures are collected;
// the binding tags deliberately carry no "required" rules.
type SignupRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// ProfileResponse is the payload of GET /api/users: the authenticated
// user together with the courses they own.
type ProfileResponse struct {
	ID           int64            `json:"id"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	EmailAddress string           `json:"emailAddress"`
	Courses      []*models.Course `json:"courses"`
}
