package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "JobLink-backend/internal/model"
	"JobLink-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users & job fixtures
var (
	TestUserJobseeker1 m.User
	TestUserJobseeker2 m.User
	TestUserEmployer1  m.User
	TestUserEmployer2  m.User

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	// Exported seeded jobs: TestJob1 and TestJob2 belong to employer 1,
	// TestJob3 belongs to employer 2
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample jobseekers, employers and jobs
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample jobseeker and employer users plus jobs if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	emails := []*string{
		ptr("seeker1@example.com"), ptr("seeker2@example.com"),
		ptr("employer1@example.com"), ptr("employer2@example.com"),
	}
	userSpecs := []struct {
		username string
		email    *string
		role     string
		profile  m.EditableProfileInfo
	}{
		{"jobseeker_1", emails[0], m.RoleJobseeker, m.EditableProfileInfo{
			Name:   "Alice Nguyen",
			Resume: "https://files.example.com/resumes/alice.pdf",
		}},
		{"jobseeker_2", emails[1], m.RoleJobseeker, m.EditableProfileInfo{
			Name:   "Bob Somsak",
			Resume: "https://files.example.com/resumes/bob.pdf",
		}},
		{"employer_1", emails[2], m.RoleEmployer, m.EditableProfileInfo{
			Name:        "Carol Petcharat",
			CompanyName: "TechNova",
			CompanyDesc: "Innovative platform solutions",
		}},
		{"employer_2", emails[3], m.RoleEmployer, m.EditableProfileInfo{
			Name:        "Dan Inthanon",
			CompanyName: "DataForge",
			CompanyDesc: "Data analytics consulting",
		}},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		users = append(users, m.User{
			ID:                  uuid.New(),
			Username:            s.username,
			Email:               s.email,
			Role:                s.role,
			Password:            hashedPwd,
			EditableProfileInfo: s.profile,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	// Map created users to exported variables
	for _, u := range users {
		switch u.Username {
		case "jobseeker_1":
			TestUserJobseeker1 = u
		case "jobseeker_2":
			TestUserJobseeker2 = u
		case "employer_1":
			TestUserEmployer1 = u
		case "employer_2":
			TestUserEmployer2 = u
		}
	}

	// Seed jobs (only if none exist yet)
	var jobCount int64
	if err := db.Model(&m.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount == 0 {
		jobs := []m.Job{
			{
				CompanyID: TestUserEmployer1.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:     "Backend Engineer",
					Desc:      "Work on Go services and database layers.",
					Req:       "Go basics; SQL familiarity",
					Location:  "Bangkok (Hybrid)",
					Category:  "Engineering",
					Type:      "Full-time",
					SalaryMin: 40000,
					SalaryMax: 70000,
					Tags:      []string{"go", "backend", "api"},
				},
			},
			{
				CompanyID: TestUserEmployer1.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:     "Frontend Developer",
					Desc:      "Build component library in React.",
					Req:       "JS/TS fundamentals",
					Location:  "Remote",
					Category:  "Engineering",
					Type:      "Contract",
					SalaryMin: 30000,
					SalaryMax: 50000,
					Tags:      []string{"react", "typescript", "ui"},
				},
			},
			{
				CompanyID: TestUserEmployer2.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:     "Data Analyst",
					Desc:      "Support data cleansing and dashboard creation.",
					Req:       "SQL; basic statistics",
					Location:  "Chiang Mai (On-site)",
					Category:  "Analytics",
					Type:      "Full-time",
					SalaryMin: 35000,
					SalaryMax: 55000,
					Tags:      []string{"data", "sql", "analytics"},
				},
			},
		}

		if err := db.Create(&jobs).Error; err != nil {
			return err
		}
		if len(jobs) > 0 {
			TestJob1 = jobs[0]
		}
		if len(jobs) > 1 {
			TestJob2 = jobs[1]
		}
		if len(jobs) > 2 {
			TestJob3 = jobs[2]
		}
	}

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", []string{
		"jobseeker_1", "jobseeker_2", "employer_1", "employer_2",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Username {
		case "jobseeker_1":
			TestUserJobseeker1 = u
		case "jobseeker_2":
			TestUserJobseeker2 = u
		case "employer_1":
			TestUserEmployer1 = u
		case "employer_2":
			TestUserEmployer2 = u
		}
	}

	// Load first three jobs deterministically
	var jobs []m.Job
	if err := db.Order("id ASC").Limit(3).Find(&jobs).Error; err == nil {
		if len(jobs) > 0 {
			TestJob1 = jobs[0]
		}
		if len(jobs) > 1 {
			TestJob2 = jobs[1]
		}
		if len(jobs) > 2 {
			TestJob3 = jobs[2]
		}
	}

	return nil
}

// ptr helper
func ptr[T any](v T) *T { return &v }
