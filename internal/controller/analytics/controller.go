// Package analytics provides the employer dashboard overview endpoint:
// point-in-time hiring counts, week-over-week trends and recent activity,
// all scoped to the jobs owned by the calling employer.
package analytics

import (
	"JobLink-backend/internal/database"
	"JobLink-backend/internal/model"
	"JobLink-backend/internal/utilities"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnalyticsController handles hiring analytics endpoints
type AnalyticsController struct {
	DB *database.DBinstanceStruct

	// Now supplies the single timestamp every window query of one request
	// shares. Overridden in tests to pin the clock.
	Now func() time.Time
}

// NewAnalyticsController creates a new instance of AnalyticsController with the provided database connection.
func NewAnalyticsController(db *database.DBinstanceStruct) *AnalyticsController {
	return &AnalyticsController{
		DB:  db,
		Now: time.Now,
	}
}

// Trends holds the signed week-over-week percentage per metric family
type Trends struct {
	ActiveJobs      int `json:"activeJobs"`
	TotalApplicants int `json:"totalApplicants"`
	TotalHired      int `json:"totalHired"`
}

// Counts holds the point-in-time totals plus their trends
type Counts struct {
	TotalActiveJobs   int64  `json:"totalActiveJobs"`
	TotalApplications int64  `json:"totalApplications"`
	TotalHired        int64  `json:"totalHired"`
	Trends            Trends `json:"trends"`
}

// OverviewData holds the recent-activity panels of the dashboard
type OverviewData struct {
	RecentJobs         []model.JobSummary        `json:"recentJobs"`
	RecentApplications []model.ApplicationDetail `json:"recentApplications"`
}

// OverviewResponse is the full dashboard payload
type OverviewResponse struct {
	Count Counts       `json:"count"`
	Data  OverviewData `json:"data"`
}

// getTrend computes the signed percentage change between two consecutive
// 7-day windows. Both zero means flat (0), growth from zero reports 100.
// The result is rounded and not clamped.
func getTrend(current, previous int64) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

// jobsScope returns a fresh count query over the employer's jobs
func (ac *AnalyticsController) jobsScope(companyID interface{}) *gorm.DB {
	return ac.DB.Model(&model.Job{}).Where("company_id = ?", companyID)
}

// applicationsScope returns a fresh count query over applications belonging
// to the employer's job set. Ownership is derived through the jobs table,
// applications carry no employer column.
func (ac *AnalyticsController) applicationsScope(companyID interface{}, accepted bool) *gorm.DB {
	q := ac.DB.Model(&model.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID)
	if accepted {
		q = q.Where("applications.status = ?", model.ApplicationStatusAccepted)
	}
	return q
}

// windowCounts counts rows of a scope in [last7, now] and [prev7, last7).
// The boundary instant now-7d lands in the current window only.
func windowCounts(scope func() *gorm.DB, column string, now time.Time) (current int64, previous int64, err error) {
	last7 := now.AddDate(0, 0, -7)
	prev7 := now.AddDate(0, 0, -14)

	if err = scope().
		Where(column+" >= ? AND "+column+" <= ?", last7, now).
		Count(&current).Error; err != nil {
		return 0, 0, err
	}
	if err = scope().
		Where(column+" >= ? AND "+column+" < ?", prev7, last7).
		Count(&previous).Error; err != nil {
		return 0, 0, err
	}
	return current, previous, nil
}

// OverviewHandler assembles the employer dashboard payload.
// @Summary Employer hiring analytics overview
// @Description Only employer can access this endpoint
// @Tags Analytics
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} OverviewResponse "Counts, trends and recent activity"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /analytics/overview [get]
func (ac *AnalyticsController) OverviewHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	if user.Role != model.RoleEmployer {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "Access denied"})
		return
	}

	// One timestamp for all six window queries, so windows derived from it
	// can never disagree by call latency
	now := ac.Now()

	var resp OverviewResponse

	// Point-in-time counts
	if err := ac.jobsScope(user.ID).Where("is_closed = ?", false).
		Count(&resp.Count.TotalActiveJobs).Error; err != nil {
		ac.fail(c, err)
		return
	}
	if err := ac.applicationsScope(user.ID, false).
		Count(&resp.Count.TotalApplications).Error; err != nil {
		ac.fail(c, err)
		return
	}
	if err := ac.applicationsScope(user.ID, true).
		Count(&resp.Count.TotalHired).Error; err != nil {
		ac.fail(c, err)
		return
	}

	// Trends: jobs created, applications received, applications accepted
	jobsCur, jobsPrev, err := windowCounts(func() *gorm.DB {
		return ac.jobsScope(user.ID)
	}, "created_at", now)
	if err != nil {
		ac.fail(c, err)
		return
	}
	appsCur, appsPrev, err := windowCounts(func() *gorm.DB {
		return ac.applicationsScope(user.ID, false)
	}, "applications.created_at", now)
	if err != nil {
		ac.fail(c, err)
		return
	}
	hiredCur, hiredPrev, err := windowCounts(func() *gorm.DB {
		return ac.applicationsScope(user.ID, true)
	}, "applications.created_at", now)
	if err != nil {
		ac.fail(c, err)
		return
	}

	resp.Count.Trends = Trends{
		ActiveJobs:      getTrend(jobsCur, jobsPrev),
		TotalApplicants: getTrend(appsCur, appsPrev),
		TotalHired:      getTrend(hiredCur, hiredPrev),
	}

	// Recent activity panels, both capped at 5 and newest first
	var recentJobs []model.Job
	if err := ac.DB.Where("company_id = ?", user.ID).
		Order("created_at DESC").
		Limit(5).
		Find(&recentJobs).Error; err != nil {
		ac.fail(c, err)
		return
	}
	resp.Data.RecentJobs = make([]model.JobSummary, 0, len(recentJobs))
	for _, job := range recentJobs {
		resp.Data.RecentJobs = append(resp.Data.RecentJobs, job.ToSummary())
	}

	var recentApps []model.Application
	if err := ac.DB.Preload("Applicant").Preload("Job").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", user.ID).
		Order("applications.created_at DESC").
		Limit(5).
		Find(&recentApps).Error; err != nil {
		ac.fail(c, err)
		return
	}
	resp.Data.RecentApplications = make([]model.ApplicationDetail, 0, len(recentApps))
	for _, app := range recentApps {
		resp.Data.RecentApplications = append(resp.Data.RecentApplications, model.ApplicationDetail{
			Application: app,
			Applicant:   app.Applicant.ToPublicProfile(),
			JobTitle:    app.Job.Title,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// fail surfaces any partial analytics failure as one aggregate error
func (ac *AnalyticsController) fail(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
		Error: fmt.Sprintf("Failed to fetch analytics: %s", err.Error()),
	})
}
