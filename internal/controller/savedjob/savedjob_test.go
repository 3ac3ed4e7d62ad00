package savedjob

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

func newTestRouter() *gin.Engine {
	r := gin.Default()
	sc := NewSavedJobController(testDB)
	r.POST("/saved-jobs/:jobId", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleJobseeker), sc.SaveHandler)
	r.DELETE("/saved-jobs/:jobId", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleJobseeker), sc.UnsaveHandler)
	r.GET("/saved-jobs/mine", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleJobseeker), sc.MySavedJobsHandler)
	return r
}

func cleanupSavedJobs(t *testing.T, jobseekerID interface{}) {
	t.Helper()
	if err := testDB.Where("jobseeker_id = ?", jobseekerID).
		Delete(&model.SavedJob{}).Error; err != nil {
		t.Fatalf("failed to cleanup saved jobs: %v", err)
	}
}

func TestSaveHandler(t *testing.T) {
	seekerToken, err := auth.GetAccessToken(t, testDB, database.TestUserJobseeker1.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	cleanupSavedJobs(t, database.TestUserJobseeker1.ID)

	r := newTestRouter()
	endpoint := fmt.Sprintf("/saved-jobs/%d", database.TestJob1.ID)

	rec, resp := testutil.MakeJSONRequest(nil, seekerToken, r, endpoint, http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	if resp != nil {
		assert.Equal(t, float64(database.TestJob1.ID), resp["job_id"])
	}

	// saving the same job a second time is a conflict
	rec2, resp2 := testutil.MakeJSONRequest(nil, seekerToken, r, endpoint, http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
	if resp2 != nil {
		assert.Equal(t, "Job already saved", resp2["error"])
	}

	var count int64
	err = testDB.Model(&model.SavedJob{}).
		Where("job_id = ? AND jobseeker_id = ?", database.TestJob1.ID, database.TestUserJobseeker1.ID).
		Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSaveHandler_JobNotFound(t *testing.T) {
	seekerToken, err := auth.GetAccessToken(t, testDB, database.TestUserJobseeker1.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	r := newTestRouter()
	rec, _ := testutil.MakeJSONRequest(nil, seekerToken, r, "/saved-jobs/999999", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSaveHandler_EmployerForbidden(t *testing.T) {
	employerToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	r := newTestRouter()
	rec, _ := testutil.MakeJSONRequest(nil, employerToken, r,
		fmt.Sprintf("/saved-jobs/%d", database.TestJob1.ID), http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnsaveHandler_Idempotent(t *testing.T) {
	seekerToken, err := auth.GetAccessToken(t, testDB, database.TestUserJobseeker2.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	cleanupSavedJobs(t, database.TestUserJobseeker2.ID)
	saved := model.SavedJob{
		JobID:       database.TestJob2.ID,
		JobseekerID: database.TestUserJobseeker2.ID,
	}
	assert.NoError(t, testDB.Create(&saved).Error)

	r := newTestRouter()
	endpoint := fmt.Sprintf("/saved-jobs/%d", database.TestJob2.ID)

	rec, resp := testutil.MakeJSONRequest(nil, seekerToken, r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec.Code)
	if resp != nil {
		assert.Equal(t, "Job removed from saved list", resp["message"])
	}

	// removing again succeeds with the same message
	rec2, resp2 := testutil.MakeJSONRequest(nil, seekerToken, r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusOK, rec2.Code)
	if resp2 != nil {
		assert.Equal(t, "Job removed from saved list", resp2["message"])
	}

	var count int64
	err = testDB.Model(&model.SavedJob{}).
		Where("job_id = ? AND jobseeker_id = ?", database.TestJob2.ID, database.TestUserJobseeker2.ID).
		Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMySavedJobsHandler(t *testing.T) {
	seekerToken, err := auth.GetAccessToken(t, testDB, database.TestUserJobseeker1.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	cleanupSavedJobs(t, database.TestUserJobseeker1.ID)

	older := model.SavedJob{JobID: database.TestJob1.ID, JobseekerID: database.TestUserJobseeker1.ID}
	assert.NoError(t, testDB.Create(&older).Error)
	assert.NoError(t, testDB.Exec(
		"UPDATE saved_jobs SET created_at = ? WHERE id = ?",
		time.Now().AddDate(0, 0, -2), older.ID).Error)

	newer := model.SavedJob{JobID: database.TestJob3.ID, JobseekerID: database.TestUserJobseeker1.ID}
	assert.NoError(t, testDB.Create(&newer).Error)

	r := newTestRouter()
	rec, resp := testutil.MakeJSONListRequest(nil, seekerToken, r, "/saved-jobs/mine", http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp, 2)
	if len(resp) == 2 {
		// newest bookmark first, each with its job and company info
		assert.Equal(t, float64(newer.ID), resp[0]["id"])

		job, ok := resp[0]["job"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, database.TestJob3.Title, job["title"])

		company, ok := resp[0]["company"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, database.TestUserEmployer2.CompanyName, company["company_name"])
	}
}
