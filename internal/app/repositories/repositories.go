package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every data-access component over one pool.
type Repositories struct {
	UserRepository   *UserRepository
	CourseRepository *CourseRepository
}

// NewRepositories creates all repositories sharing the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db),
		CourseRepository: NewCourseRepository(db),
	}
}
