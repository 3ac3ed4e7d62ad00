package analytics

import (
	"JobLink-backend/internal/auth"
	"JobLink-backend/internal/database"
	"JobLink-backend/internal/middleware"
	"JobLink-backend/internal/model"
	"JobLink-backend/internal/testutil"
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func newTestRouter(ac *AnalyticsController) *gin.Engine {
	r := gin.Default()
	r.GET("/analytics/overview", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleEmployer), ac.OverviewHandler)
	return r
}

// pinnedController returns a controller whose clock always answers fixedNow,
// so window boundaries in assertions are exact.
func pinnedController(fixedNow time.Time) *AnalyticsController {
	ac := NewAnalyticsController(testDB)
	ac.Now = func() time.Time { return fixedNow }
	return ac
}

func cleanupEmployerApplications(t *testing.T, companyID uuid.UUID) {
	t.Helper()
	err := testDB.Exec(
		"DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE company_id = ?)",
		companyID).Error
	if err != nil {
		t.Fatalf("failed to cleanup applications: %v", err)
	}
}

// seedApplication inserts an application and pins its created_at, which the
// model exposes read-only.
func seedApplication(t *testing.T, jobID uint, applicantID uuid.UUID, status string, createdAt time.Time) model.Application {
	t.Helper()
	app := model.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      status,
	}
	if err := testDB.Create(&app).Error; err != nil {
		t.Fatalf("failed to seed application: %v", err)
	}
	if err := testDB.Exec("UPDATE applications SET created_at = ? WHERE id = ?", createdAt, app.ID).Error; err != nil {
		t.Fatalf("failed to backdate application: %v", err)
	}
	return app
}

func TestGetTrend(t *testing.T) {
	cases := []struct {
		name     string
		current  int64
		previous int64
		want     int
	}{
		{"both windows empty", 0, 0, 0},
		{"growth from zero", 5, 0, 100},
		{"doubled", 10, 5, 100},
		{"halved", 5, 10, -50},
		{"dropped to zero", 0, 10, -100},
		{"rounded", 1, 3, -67},
		{"unclamped growth", 30, 10, 200},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, getTrend(c.current, c.previous))
		})
	}
}

func TestOverviewHandler_Scenario(t *testing.T) {
	employerToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer2.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	fixedNow := time.Now().UTC().Truncate(time.Second)

	// Employer 2 owns a single job, created 10 days ago
	cleanupEmployerApplications(t, database.TestUserEmployer2.ID)
	assert.NoError(t, testDB.Exec(
		"UPDATE jobs SET created_at = ? WHERE id = ?",
		fixedNow.AddDate(0, 0, -10), database.TestJob3.ID).Error)

	// One application received an hour ago, one accepted 9 days ago
	fresh := seedApplication(t, database.TestJob3.ID, database.TestUserJobseeker1.ID,
		model.ApplicationStatusPending, fixedNow.Add(-time.Hour))
	seedApplication(t, database.TestJob3.ID, database.TestUserJobseeker2.ID,
		model.ApplicationStatusAccepted, fixedNow.AddDate(0, 0, -9))

	r := newTestRouter(pinnedController(fixedNow))
	rec, resp := testutil.MakeJSONRequest(nil, employerToken, r, "/analytics/overview", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	count, ok := resp["count"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing count object in response: %v", resp)
	}
	assert.Equal(t, float64(1), count["totalActiveJobs"])
	assert.Equal(t, float64(2), count["totalApplications"])
	assert.Equal(t, float64(1), count["totalHired"])

	trends, ok := count["trends"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing trends object in response: %v", resp)
	}
	// the job predates both windows entirely empty vs. one created 10 days
	// ago in the previous window
	assert.Equal(t, float64(-100), trends["activeJobs"])
	// one application per window: flat
	assert.Equal(t, float64(0), trends["totalApplicants"])
	// the only hire sits in the previous window
	assert.Equal(t, float64(-100), trends["totalHired"])

	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing data object in response: %v", resp)
	}
	recentJobs, _ := data["recentJobs"].([]interface{})
	assert.Len(t, recentJobs, 1)
	if len(recentJobs) == 1 {
		job := recentJobs[0].(map[string]interface{})
		assert.Equal(t, database.TestJob3.Title, job["title"])
	}

	recentApps, _ := data["recentApplications"].([]interface{})
	assert.Len(t, recentApps, 2)
	if len(recentApps) == 2 {
		first := recentApps[0].(map[string]interface{})
		assert.Equal(t, float64(fresh.ID), first["id"])
		applicant, ok := first["applicant"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, database.TestUserJobseeker1.Name, applicant["name"])
		assert.Equal(t, database.TestJob3.Title, first["job_title"])
	}
}

func TestOverviewHandler_WindowBoundary(t *testing.T) {
	employerToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	fixedNow := time.Now().UTC().Truncate(time.Second)
	cleanupEmployerApplications(t, database.TestUserEmployer1.ID)

	// An application at exactly now-7d belongs to the current window only
	seedApplication(t, database.TestJob1.ID, database.TestUserJobseeker1.ID,
		model.ApplicationStatusPending, fixedNow.AddDate(0, 0, -7))

	r := newTestRouter(pinnedController(fixedNow))
	rec, resp := testutil.MakeJSONRequest(nil, employerToken, r, "/analytics/overview", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	count, ok := resp["count"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing count object in response: %v", resp)
	}
	trends, ok := count["trends"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing trends object in response: %v", resp)
	}
	// current=1, previous=0; double-counting the boundary would read flat
	assert.Equal(t, float64(100), trends["totalApplicants"])

	// A second application just inside the previous window flips it to flat
	seedApplication(t, database.TestJob1.ID, database.TestUserJobseeker2.ID,
		model.ApplicationStatusPending, fixedNow.AddDate(0, 0, -7).Add(-time.Second))

	rec2, resp2 := testutil.MakeJSONRequest(nil, employerToken, r, "/analytics/overview", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec2.Code)
	count2 := resp2["count"].(map[string]interface{})
	trends2 := count2["trends"].(map[string]interface{})
	assert.Equal(t, float64(0), trends2["totalApplicants"])
}

func TestOverviewHandler_RecentCappedAtFive(t *testing.T) {
	employerToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	fixedNow := time.Now().UTC().Truncate(time.Second)
	cleanupEmployerApplications(t, database.TestUserEmployer1.ID)

	// Six distinct applicants across the employer's two jobs
	assert.NoError(t, testDB.Exec("DELETE FROM users WHERE username LIKE 'seeker_extra_%'").Error)
	seekers := make([]model.User, 0, 6)
	for i := 0; i < 6; i++ {
		seeker := model.User{
			ID:       uuid.New(),
			Username: fmt.Sprintf("seeker_extra_%d", i),
			Role:     model.RoleJobseeker,
		}
		assert.NoError(t, testDB.Create(&seeker).Error)
		seekers = append(seekers, seeker)
	}

	var newest model.Application
	for i, seeker := range seekers {
		jobID := database.TestJob1.ID
		if i%2 == 1 {
			jobID = database.TestJob2.ID
		}
		// later index, more recent application
		newest = seedApplication(t, jobID, seeker.ID,
			model.ApplicationStatusPending, fixedNow.Add(-time.Duration(6-i)*time.Hour))
	}

	r := newTestRouter(pinnedController(fixedNow))
	rec, resp := testutil.MakeJSONRequest(nil, employerToken, r, "/analytics/overview", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	count := resp["count"].(map[string]interface{})
	assert.Equal(t, float64(6), count["totalApplications"])

	data := resp["data"].(map[string]interface{})
	recentApps, _ := data["recentApplications"].([]interface{})
	assert.Len(t, recentApps, 5)
	if len(recentApps) == 5 {
		first := recentApps[0].(map[string]interface{})
		assert.Equal(t, float64(newest.ID), first["id"])
	}
}

func TestOverviewHandler_OwnershipScoped(t *testing.T) {
	employerToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer2.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	fixedNow := time.Now().UTC().Truncate(time.Second)
	cleanupEmployerApplications(t, database.TestUserEmployer1.ID)
	cleanupEmployerApplications(t, database.TestUserEmployer2.ID)

	// Activity on another employer's job must never leak into this overview
	seedApplication(t, database.TestJob1.ID, database.TestUserJobseeker1.ID,
		model.ApplicationStatusAccepted, fixedNow.Add(-time.Hour))

	r := newTestRouter(pinnedController(fixedNow))
	rec, resp := testutil.MakeJSONRequest(nil, employerToken, r, "/analytics/overview", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	count := resp["count"].(map[string]interface{})
	assert.Equal(t, float64(0), count["totalApplications"])
	assert.Equal(t, float64(0), count["totalHired"])

	data := resp["data"].(map[string]interface{})
	recentApps, _ := data["recentApplications"].([]interface{})
	assert.Empty(t, recentApps)
}

func TestOverviewHandler_JobseekerForbidden(t *testing.T) {
	seekerToken, err := auth.GetAccessToken(t, testDB, database.TestUserJobseeker1.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	r := newTestRouter(NewAnalyticsController(testDB))
	rec, resp := testutil.MakeJSONRequest(nil, seekerToken, r, "/analytics/overview", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	if resp != nil {
		assert.NotEmpty(t, resp["error"])
	}
}
