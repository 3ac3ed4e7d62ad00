package database

import (
	"context"
	"log"
	"testing"
	"time"

	m "JobLink-backend/internal/model"

	// Load env
	_ "github.com/joho/godotenv/autoload"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
)

var testDB *DBinstanceStruct

func TestMain(t *testing.M) {
	var teardownFn func(context.Context, ...testcontainers.TerminateOption) error
	var err error
	teardownFn, testDB, err = GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	t.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardownFn != nil && teardownFn(ctx) != nil {
		log.Fatalf("could not teardown postgres container: %v", err)
	}
}

func TestNew(t *testing.T) {
	db, err := NewDBInstance(testDB.Config)
	if err != nil {
		t.Fatalf("Database failed to initialize: %s", err)
	}
	if db.Close() != nil {
		t.Fatalf("expected Close() to return nil")
	}
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestMigrateIdempotent(t *testing.T) {
	// models are already migrated on startup; running again must be a no-op
	assert.NoError(t, testDB.Migrate())
}

func TestSeededFixtures(t *testing.T) {
	var userCount int64
	assert.NoError(t, testDB.Model(&m.User{}).Count(&userCount).Error)
	assert.GreaterOrEqual(t, userCount, int64(4))

	assert.NotEqual(t, TestUserJobseeker1.ID, TestUserEmployer1.ID)
	assert.Equal(t, m.RoleJobseeker, TestUserJobseeker1.Role)
	assert.Equal(t, m.RoleEmployer, TestUserEmployer1.Role)

	// seeded jobs carry their owners
	assert.Equal(t, TestUserEmployer1.ID, TestJob1.CompanyID)
	assert.Equal(t, TestUserEmployer1.ID, TestJob2.CompanyID)
	assert.Equal(t, TestUserEmployer2.ID, TestJob3.CompanyID)
}

func TestUniqueApplicationIndex(t *testing.T) {
	app := m.Application{
		JobID:       TestJob1.ID,
		ApplicantID: TestUserJobseeker1.ID,
		Status:      m.ApplicationStatusPending,
	}
	assert.NoError(t, testDB.Create(&app).Error)

	dup := m.Application{
		JobID:       TestJob1.ID,
		ApplicantID: TestUserJobseeker1.ID,
		Status:      m.ApplicationStatusPending,
	}
	assert.Error(t, testDB.Create(&dup).Error, "second application for the same pair must hit the unique index")

	assert.NoError(t, testDB.Delete(&app).Error)
}

func TestUniqueSavedJobIndex(t *testing.T) {
	saved := m.SavedJob{
		JobID:       TestJob1.ID,
		JobseekerID: TestUserJobseeker1.ID,
	}
	assert.NoError(t, testDB.Create(&saved).Error)

	dup := m.SavedJob{
		JobID:       TestJob1.ID,
		JobseekerID: TestUserJobseeker1.ID,
	}
	assert.Error(t, testDB.Create(&dup).Error, "second bookmark for the same pair must hit the unique index")

	assert.NoError(t, testDB.Delete(&saved).Error)
}
