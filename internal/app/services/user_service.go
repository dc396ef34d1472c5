package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/altan/coursehub/internal/app/models"
	"github.com/altan/coursehub/internal/app/models/dto"
	"github.com/altan/coursehub/internal/pkg/apperrors"
	"github.com/altan/coursehub/internal/pkg/auth"
	"github.com/altan/coursehub/internal/pkg/validation"
)

// UserStore is the slice of the data-access layer the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// OwnedCourseLister lists the courses a user owns, for the profile payload.
type OwnedCourseLister interface {
	GetCoursesByOwnerID(ctx context.Context, userID int64) ([]*models.Course, error)
}

// UserService handles signup and the authenticated profile.
type UserService struct {
	users   UserStore
	courses OwnedCourseLister
	logger  zerolog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore, courses OwnedCourseLister, logger zerolog.Logger) *UserService {
	return &UserService{
		users:   users,
		courses: courses,
		logger:  logger,
	}
}

// Register validates the signup request, hashes the password and creates the
// user. A duplicate email surfaces as a ValidationError so the response is a
// 400 with a field message, matching every other signup failure.
func (s *UserService) Register(ctx context.Context, req dto.SignupRequest) error {
	collector := validation.NewCollector().
		Require("firstName", req.FirstName).
		Require("lastName", req.LastName).
		RequireEmail("emailAddress", req.EmailAddress).
		Require("password", req.Password)

	if collector.HasErrors() {
		return apperrors.NewValidationError(collector.Messages())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     hash,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return apperrors.NewValidationError(
				[]string{validation.DuplicateEmailMessage("emailAddress")})
		}
		return err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User registered")
	return nil
}

// Profile re-reads the authenticated user and attaches the courses they own.
func (s *UserService) Profile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.GetCoursesByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if courses == nil {
		courses = []*models.Course{}
	}

	return &dto.ProfileResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
		Courses:      courses,
	}, nil
}
