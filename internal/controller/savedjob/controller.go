// Package savedjob provides HTTP handlers for job bookmark operations.
package savedjob

import (
	"JobLink-backend/internal/database"
	"JobLink-backend/internal/model"
	"JobLink-backend/internal/utilities"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SavedJobController handles saved job related endpoints
type SavedJobController struct {
	DB *database.DBinstanceStruct
}

// NewSavedJobController creates a new instance of SavedJobController with the provided database connection.
func NewSavedJobController(db *database.DBinstanceStruct) *SavedJobController {
	return &SavedJobController{
		DB: db,
	}
}

// SaveHandler bookmarks a job for the calling jobseeker.
// @Summary Save a job
// @Description Only jobseeker can access this endpoint
// @Tags SavedJob
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param jobId path int true "Job ID to save"
// @Success 201 {object} model.SavedJob "Job saved"
// @Failure 400 {object} utilities.ErrorResponse "Job already saved or job id invalid"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as jobseeker"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /saved-jobs/{jobId} [post]
func (s *SavedJobController) SaveHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var job model.Job
	if err := s.DB.First(&job, "id = ?", c.Param("jobId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	existing := model.SavedJob{}
	if err := s.DB.
		Where("job_id = ? AND jobseeker_id = ?", job.ID, user.ID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Job already saved",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to check existing saved job",
		})
		return
	}

	saved := model.SavedJob{
		JobID:       job.ID,
		JobseekerID: user.ID,
	}

	if err := s.DB.Create(&saved).Error; err != nil {
		var pqErr *pgconn.PgError
		if errors.As(err, &pqErr) {
			// Concurrent duplicate resolved by the unique index
			if pqErr.Code == "23505" {
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: "Job already saved",
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to save job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// UnsaveHandler removes a bookmark. It is idempotent: removing a bookmark
// that does not exist answers with the same success message.
// @Summary Unsave a job
// @Description Only jobseeker can access this endpoint
// @Tags SavedJob
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param jobId path int true "Job ID to remove from saved list"
// @Success 200 {object} utilities.MessageResponse "Job removed from saved list"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /saved-jobs/{jobId} [delete]
func (s *SavedJobController) UnsaveHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	if err := s.DB.
		Where("job_id = ? AND jobseeker_id = ?", c.Param("jobId"), user.ID).
		Delete(&model.SavedJob{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to remove saved job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{
		Message: "Job removed from saved list",
	})
}

// MySavedJobsHandler lists the caller's bookmarks, each expanded with its
// job and the public company fields of the job's employer.
// @Summary List the caller's saved jobs
// @Tags SavedJob
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.SavedJobResponse "Saved jobs with company info"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /saved-jobs/mine [get]
func (s *SavedJobController) MySavedJobsHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var saved []model.SavedJob
	if err := s.DB.Preload("Job").Preload("Job.Company").
		Where("jobseeker_id = ?", user.ID).
		Order("created_at DESC").
		Find(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve saved jobs: %s", err.Error()),
		})
		return
	}

	resp := make([]model.SavedJobResponse, 0, len(saved))
	for _, sv := range saved {
		resp = append(resp, model.SavedJobResponse{
			ID:        sv.ID,
			CreatedAt: sv.CreatedAt,
			Job:       sv.Job,
			Company:   sv.Job.Company.ToPublicProfile(),
		})
	}

	c.JSON(http.StatusOK, resp)
}
