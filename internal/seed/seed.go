package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/altan/coursehub/internal/app/models"
	appRepos "github.com/altan/coursehub/internal/app/repositories"
	"github.com/altan/coursehub/internal/pkg/apperrors"
	pkgAuth "github.com/altan/coursehub/internal/pkg/auth"
)

// CreateDefaultData creates a demo user and course for development mode.
// Existing data is left alone; the seed is safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")

	hash, err := pkgAuth.HashPassword("joepassword")
	if err != nil {
		return err
	}

	demoUser := &appModels.User{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     hash,
	}

	err = userRepo.CreateUser(ctx, demoUser)
	if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		// Seed already present; nothing else to create.
		return nil
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo user")
		return err
	}

	estimated := "12 hours"
	materials := "* Notebook\n* Pencil"
	demoCourse := &appModels.Course{
		Title:           "Build a Basic Bookcase",
		Description:     "High-end furniture projects are great to dream about, but unless you have a well-equipped shop you need a plan that fits your budget.",
		EstimatedTime:   &estimated,
		MaterialsNeeded: &materials,
		UserID:          demoUser.ID,
	}

	if err := courseRepo.CreateCourse(ctx, demoCourse); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo course")
		return err
	}

	lgr.Info().Int64("userId", demoUser.ID).Int64("courseId", demoCourse.ID).Msg("Default data created")
	return nil
}
