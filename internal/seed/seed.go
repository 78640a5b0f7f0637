// Package seed populates a development database with demo data so the
// services can be exercised without hand-crafting fixtures first.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/cdjacome2/microcampus/internal/app/models"
	appRepos "github.com/cdjacome2/microcampus/internal/app/repositories"
	"github.com/cdjacome2/microcampus/internal/pkg/apperrors"
)

// CreateDemoUsers inserts a handful of demo users if they don't exist yet.
// Existing emails are skipped silently; other errors are collected and
// returned without stopping the process.
func CreateDemoUsers(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating demo users...")
	var finalErr error

	demoUsers := []appModels.User{
		{
			FirstName: "Ana",
			LastName:  "Torres",
			Email:     "ana.torres@microcampus.dev",
			Phone:     "+34600111222",
			BirthDate: time.Date(1998, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			FirstName: "Luis",
			LastName:  "Mendoza",
			Email:     "luis.mendoza@microcampus.dev",
			Phone:     "+34600333444",
			BirthDate: time.Date(2000, 7, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			FirstName: "Carla",
			LastName:  "Rivas",
			Email:     "carla.rivas@microcampus.dev",
			Phone:     "+34600555666",
			BirthDate: time.Date(1997, 11, 23, 0, 0, 0, 0, time.UTC),
		},
	}

	for i := range demoUsers {
		user := demoUsers[i]
		err := userRepo.Create(ctx, &user)
		switch {
		case err == nil:
			lgr.Info().Int64("userId", user.ID).Str("email", user.Email).Msg("Demo user created")
		case errors.Is(err, apperrors.ErrEmailAlreadyExists):
			lgr.Debug().Str("email", user.Email).Msg("Demo user already exists, skipping")
		default:
			lgr.Error().Err(err).Str("email", user.Email).Msg("Error creating demo user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Demo user check/creation finished.")
	return finalErr
}

// CreateDemoCourses inserts demo courses when the catalog is empty. An
// already populated catalog is left untouched.
func CreateDemoCourses(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating demo courses...")

	existing, err := courseRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking existing courses")
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Int("count", len(existing)).Msg("Course catalog already populated, skipping demo data")
		return nil
	}

	distSys := "Consensus, replication and the assorted ways distributed systems fail."
	databases := "Relational modeling, SQL and transaction isolation in practice."

	demoCourses := []appModels.Course{
		{Name: "Distributed Systems", Description: &distSys, Credits: 6},
		{Name: "Database Systems", Description: &databases, Credits: 5},
		{Name: "Software Engineering Workshop", Credits: 4},
	}

	var finalErr error
	for i := range demoCourses {
		course := demoCourses[i]
		if err := courseRepo.Create(ctx, &course); err != nil {
			lgr.Error().Err(err).Str("name", course.Name).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Int64("courseId", course.ID).Str("name", course.Name).Msg("Demo course created")
	}

	lgr.Info().Msg("Demo course check/creation finished.")
	return finalErr
}
