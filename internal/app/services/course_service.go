package services

import (
	"context"

	"github.com/rs/zerolog"

	appAuth "github.com/altan/coursehub/internal/app/auth"
	"github.com/altan/coursehub/internal/app/models"
	"github.com/altan/coursehub/internal/app/models/dto"
	"github.com/altan/coursehub/internal/pkg/apperrors"
	"github.com/altan/coursehub/internal/pkg/validation"
)

// CourseStore is the slice of the data-access layer the course service needs.
type CourseStore interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

// CourseService handles course CRUD and the ownership rule.
type CourseService struct {
	courses CourseStore
	authz   *appAuth.AuthorizationService
	logger  zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, authz *appAuth.AuthorizationService, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courses: courses,
		authz:   authz,
		logger:  logger,
	}
}

// validateCourse collects the required-field failures of a course body.
func validateCourse(req dto.SaveCourseRequest) error {
	collector := validation.NewCollector().
		Require("title", req.Title).
		Require("description", req.Description)

	if collector.HasErrors() {
		return apperrors.NewValidationError(collector.Messages())
	}
	return nil
}

// ListCourses returns every course with its owner summary.
func (s *CourseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.GetAllCourses(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}

// GetCourse returns one course with its owner summary.
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetCourseByID(ctx, id)
}

// CreateCourse validates the body and creates a course owned by ownerID.
func (s *CourseService) CreateCourse(ctx context.Context, ownerID int64, req dto.SaveCourseRequest) (*models.Course, error) {
	if err := validateCourse(req); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
		UserID:          ownerID,
	}

	if err := s.courses.CreateCourse(ctx, course); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseId", course.ID).Int64("ownerId", ownerID).Msg("Course created")
	return course, nil
}

// UpdateCourse applies the ownership rule and updates a course. The current
// owner is re-read inside this request: a missing row is a 404 before any
// field access, a foreign owner is a 403 with no mutation.
func (s *CourseService) UpdateCourse(ctx context.Context, id, requesterID int64, req dto.SaveCourseRequest) error {
	if err := validateCourse(req); err != nil {
		return err
	}

	course, err := s.courses.GetCourseByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.authz.CanModifyCourse(requesterID, course) {
		return apperrors.ErrPermissionDenied
	}

	course.Title = req.Title
	course.Description = req.Description
	if req.EstimatedTime != nil {
		course.EstimatedTime = req.EstimatedTime
	}
	if req.MaterialsNeeded != nil {
		course.MaterialsNeeded = req.MaterialsNeeded
	}

	return s.courses.UpdateCourse(ctx, course)
}

// DeleteCourse applies the ownership rule and deletes a course.
func (s *CourseService) DeleteCourse(ctx context.Context, id, requesterID int64) error {
	course, err := s.courses.GetCourseByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.authz.CanModifyCourse(requesterID, course) {
		return apperrors.ErrPermissionDenied
	}

	return s.courses.DeleteCourse(ctx, id)
}
