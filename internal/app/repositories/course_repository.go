package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/altan/coursehub/internal/app/models"
	"github.com/altan/coursehub/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// courseColumns is the SELECT list shared by every course query joining the owner.
const courseColumns = `
	c.id, c.title, c.description, c.estimated_time, c.materials_needed, c.user_id,
	c.created_at, c.updated_at,
	u.id, u.first_name, u.last_name, u.email_address
`

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var owner models.UserSummary
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.EstimatedTime,
		&course.MaterialsNeeded,
		&course.UserID,
		&course.CreatedAt,
		&course.UpdatedAt,
		&owner.ID,
		&owner.FirstName,
		&owner.LastName,
		&owner.EmailAddress,
	)
	if err != nil {
		return nil, err
	}
	course.Owner = &owner
	return &course, nil
}

// CreateCourse inserts a new course owned by course.UserID.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.UserID,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetCourseByID retrieves a course with its owner summary.
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAllCourses retrieves all courses with their owner summaries.
func (r *CourseRepository) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetCoursesByOwnerID retrieves all courses owned by a user.
func (r *CourseRepository) GetCoursesByOwnerID(ctx context.Context, userID int64) ([]*models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE c.user_id = $1
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing courses by owner: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// UpdateCourse updates the mutable fields of a course. The owner column is
// never touched. A vanished row reports ErrCourseNotFound so that racing
// deletes resolve to 404.
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, estimated_time = $3, materials_needed = $4,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Title, course.Description, course.EstimatedTime, course.MaterialsNeeded, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// DeleteCourse deletes a course by ID.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
