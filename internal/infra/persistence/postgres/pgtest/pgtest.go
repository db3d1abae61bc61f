//go:build integration

// Package pgtest runs integration tests against a throwaway PostgreSQL
// container with the production schema.
package pgtest

import (
	"context"
	"testing"
	"time"

	"edusync/internal/domain/entity"
	"edusync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Start boots a PostgreSQL container, migrates every model and returns a
// session configured like the one the application opens.
func Start(t testing.TB) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("edusync_test"),
		tcpostgres.WithUsername("edusync"),
		tcpostgres.WithPassword("edusync"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

// Reset empties every table.
func Reset(t testing.TB, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Exec("TRUNCATE TABLE results, assessments, courses, users").Error)
}

// Count returns the number of rows in the table behind m.
func Count(t testing.TB, db *gorm.DB, m any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)

	return n
}

// SeedUser inserts an account and returns its id.
func SeedUser(t testing.TB, db *gorm.DB, email string, role entity.Role) uuid.UUID {
	t.Helper()

	user := &model.UserModel{
		ID:           uuid.New(),
		Name:         email,
		Email:        email,
		PasswordHash: "ZGlnZXN0",
		PasswordSalt: []byte("0123456789abcdef"),
		Role:         role.String(),
		Version:      1,
	}
	require.NoError(t, db.Create(user).Error)

	return user.ID
}

// CourseTree holds the ids written by SeedCourse.
type CourseTree struct {
	CourseID      uuid.UUID
	AssessmentIDs []uuid.UUID
	ResultIDs     []uuid.UUID
}

// SeedCourse inserts a course owned by instructorID with the given number of
// assessments, each carrying resultsEach results of studentID.
func SeedCourse(t testing.TB, db *gorm.DB, instructorID, studentID uuid.UUID, assessments, resultsEach int) CourseTree {
	t.Helper()

	tree := CourseTree{CourseID: uuid.New()}
	require.NoError(t, db.Omit(clause.Associations).Create(&model.CourseModel{
		ID:           tree.CourseID,
		Title:        "Course " + tree.CourseID.String()[:8],
		InstructorID: &instructorID,
		Version:      1,
	}).Error)

	for range assessments {
		assessmentID := uuid.New()
		require.NoError(t, db.Omit(clause.Associations).Create(&model.AssessmentModel{
			ID:       assessmentID,
			CourseID: tree.CourseID,
			Title:    "Quiz " + assessmentID.String()[:8],
			MaxScore: 10,
			Version:  1,
		}).Error)
		tree.AssessmentIDs = append(tree.AssessmentIDs, assessmentID)

		for score := range resultsEach {
			resultID := uuid.New()
			require.NoError(t, db.Omit(clause.Associations).Create(&model.ResultModel{
				ID:           resultID,
				AssessmentID: &assessmentID,
				UserID:       &studentID,
				Score:        score,
				AttemptDate:  time.Now().UTC(),
				Version:      1,
			}).Error)
			tree.ResultIDs = append(tree.ResultIDs, resultID)
		}
	}

	return tree
}
