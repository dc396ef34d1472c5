package auth

import (
	"github.com/altan/coursehub/internal/app/models"
)

// AuthorizationService answers resource-level permission questions.
// Ownership is compared by the immutable numeric user ID, never by email:
// email is mutable state and two requests may observe it mid-change.
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// CanModifyCourse reports whether the user may update or delete the course.
func (s *AuthorizationService) CanModifyCourse(userID int64, course *models.Course) bool {
	if course == nil {
		return false
	}
	return course.UserID == userID
}
