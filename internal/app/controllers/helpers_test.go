package controllers_test

import (
	"context"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	appAuth "github.com/altan/coursehub/internal/app/auth"
	"github.com/altan/coursehub/internal/app/controllers"
	"github.com/altan/coursehub/internal/app/models"
	"github.com/altan/coursehub/internal/app/routes"
	"github.com/altan/coursehub/internal/app/services"
	"github.com/altan/coursehub/internal/middleware"
	"github.com/altan/coursehub/internal/pkg/apperrors"
	"github.com/altan/coursehub/internal/pkg/auth"
)

// fakeUserStore is an in-memory stand-in for the user repository. Email
// uniqueness is enforced the way the real store does it: atomically inside
// CreateUser.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.EmailAddress == user.EmailAddress {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.EmailAddress == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

// fakeCourseStore is an in-memory stand-in for the course repository. Reads
// hand out copies with the owner summary attached, matching the join the
// real queries perform.
type fakeCourseStore struct {
	mu      sync.Mutex
	nextID  int64
	courses map[int64]*models.Course
	owners  *fakeUserStore
}

func newFakeCourseStore(owners *fakeUserStore) *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course), owners: owners}
}

func (f *fakeCourseStore) withOwner(course models.Course) *models.Course {
	if owner, err := f.owners.GetUserByID(context.Background(), course.UserID); err == nil {
		course.Owner = owner.Summary()
	}
	return &course
}

func (f *fakeCourseStore) CreateCourse(_ context.Context, course *models.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	course.ID = f.nextID
	stored := *course
	f.courses[course.ID] = &stored
	return nil
}

func (f *fakeCourseStore) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return f.withOwner(*course), nil
}

func (f *fakeCourseStore) GetAllCourses(_ context.Context) ([]*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []*models.Course
	for id := int64(1); id <= f.nextID; id++ {
		if course, ok := f.courses[id]; ok {
			all = append(all, f.withOwner(*course))
		}
	}
	return all, nil
}

func (f *fakeCourseStore) GetCoursesByOwnerID(_ context.Context, userID int64) ([]*models.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var owned []*models.Course
	for id := int64(1); id <= f.nextID; id++ {
		if course, ok := f.courses[id]; ok && course.UserID == userID {
			owned = append(owned, f.withOwner(*course))
		}
	}
	return owned, nil
}

func (f *fakeCourseStore) UpdateCourse(_ context.Context, course *models.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	stored := *course
	stored.Owner = nil
	f.courses[course.ID] = &stored
	return nil
}

func (f *fakeCourseStore) DeleteCourse(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

// newTestServer wires the real services, controllers, middleware and routes
// over the in-memory stores.
func newTestServer(t *testing.T) (*gin.Engine, *fakeUserStore, *fakeCourseStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userStore := newFakeUserStore()
	courseStore := newFakeCourseStore(userStore)

	userService := services.NewUserService(userStore, courseStore, zerolog.Nop())
	courseService := services.NewCourseService(courseStore, appAuth.NewAuthorizationService(), zerolog.Nop())
	authMiddleware := middleware.NewAuthMiddleware(userStore, zerolog.Nop())

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewUserController(userService),
		controllers.NewCourseController(courseService),
		authMiddleware,
	)

	return router, userStore, courseStore
}

// mustCreateUser seeds a user with a properly hashed password.
func mustCreateUser(t *testing.T, store *fakeUserStore, firstName, lastName, email, password string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: email,
		Password:     hash,
	}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}
