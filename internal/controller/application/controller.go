// Package application provides HTTP handlers for job application operations.
package application

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

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	DB *database.DBinstanceStruct
}

// NewApplicationController creates a new instance of ApplicationController with the provided database connection.
func NewApplicationController(db *database.DBinstanceStruct) *ApplicationController {
	return &ApplicationController{
		DB: db,
	}
}

// ApplyHandler handles the creation of a new job application by a jobseeker.
// The resume URL is copied from the caller's profile at apply time.
// @Summary Apply to a job
// @Description Only jobseeker can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param jobId path int true "Job ID to apply to"
// @Success 201 {object} model.Application "Successfully applied to job"
// @Failure 400 {object} utilities.ErrorResponse "Already applied to this job"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as jobseeker"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{jobId} [post]
func (a *ApplicationController) ApplyHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var job model.Job
	if err := a.DB.First(&job, "id = ?", c.Param("jobId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	// Friendly pre-check for the common duplicate case. The unique index on
	// (job_id, applicant_id) is the actual guarantee, see the 23505 branch.
	existing := model.Application{}
	if err := a.DB.
		Where("job_id = ? AND applicant_id = ?", job.ID, user.ID).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "You have already applied to this job",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to check existing application",
		})
		return
	}

	application := model.Application{
		JobID:       job.ID,
		ApplicantID: user.ID,
		Status:      model.ApplicationStatusPending,
		Resume:      user.Resume,
	}

	if err := a.DB.Create(&application).Error; err != nil {
		var pqErr *pgconn.PgError
		if errors.As(err, &pqErr) {
			// A concurrent request got past the pre-check first
			if pqErr.Code == "23505" {
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: "You have already applied to this job",
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, application)
}

// MyApplicationsHandler returns the caller's applications, newest first,
// each joined with a reduced projection of its job.
// @Summary List the caller's own applications
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.ApplicationWithJob "Applications sorted by creation time descending"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/mine [get]
func (a *ApplicationController) MyApplicationsHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var apps []model.Application
	if err := a.DB.Preload("Job").
		Where("applicant_id = ?", user.ID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve applications: %s", err.Error()),
		})
		return
	}

	resp := make([]model.ApplicationWithJob, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, model.ApplicationWithJob{
			Application: app,
			Job:         app.Job.ToSummary(),
		})
	}

	c.JSON(http.StatusOK, resp)
}

// ApplicantsForJobHandler returns every application under one job.
// Only the employer owning the job may call it; anyone else gets 403,
// including when the job id does not resolve at all.
// @Summary List applicants for a job
// @Description Only the owning employer can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param jobId path int true "Job ID"
// @Success 200 {array} model.ApplicationDetail "Applications with applicant public profiles"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Caller does not own this job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/job/{jobId} [get]
func (a *ApplicationController) ApplicantsForJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var job model.Job
	err = a.DB.First(&job, "id = ?", c.Param("jobId")).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}
	// A missing job answers the same as a job the caller does not own,
	// so the endpoint does not leak which job ids exist
	if err != nil || job.CompanyID != user.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Not authorized to view applicants",
		})
		return
	}

	var apps []model.Application
	if err := a.DB.Preload("Applicant").
		Where("job_id = ?", job.ID).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve applications: %s", err.Error()),
		})
		return
	}

	resp := make([]model.ApplicationDetail, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, model.ApplicationDetail{
			Application: app,
			Applicant:   app.Applicant.ToPublicProfile(),
			JobTitle:    job.Title,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// GetApplicationByIDHandler returns one application to its applicant or to
// the employer owning the parent job. Ownership by the employer is derived
// through the job record; it is never stored on the application.
// @Summary Get application by ID
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Success 200 {object} model.ApplicationDetail "The application"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Caller is neither applicant nor owning employer"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id} [get]
func (a *ApplicationController) GetApplicationByIDHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var app model.Application
	if err := a.DB.Preload("Job").Preload("Applicant").
		First(&app, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}

	isOwner := app.ApplicantID == user.ID || app.Job.CompanyID == user.ID
	if !isOwner {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Not authorized to view this application",
		})
		return
	}

	c.JSON(http.StatusOK, model.ApplicationDetail{
		Application: app,
		Applicant:   app.Applicant.ToPublicProfile(),
		JobTitle:    app.Job.Title,
	})
}

type statusUpdate struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatusHandler changes an application's status. Write access is
// stricter than read access: only the owning employer may call it, the
// applicant never can. Any status in the closed set may move to any other.
// @Summary Update application status
// @Description Only the employer owning the parent job can access this endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Param status body statusUpdate true "New status"
// @Success 200 {object} utilities.MessageResponse "Status updated"
// @Failure 400 {object} utilities.ErrorResponse "Unknown status value"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Caller does not own the parent job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id}/status [put]
func (a *ApplicationController) UpdateStatusHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var body statusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Status must be provided",
		})
		return
	}

	if !utilities.Contains(model.ApplicationStatuses, body.Status) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Unknown status '%s'", body.Status),
		})
		return
	}

	var app model.Application
	err = a.DB.Preload("Job").First(&app, "id = ?", c.Param("id")).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}
	if err != nil || app.Job.CompanyID != user.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Not authorized to update this application",
		})
		return
	}

	if err := a.DB.Model(&app).Update("status", body.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application status updated",
		"status":  body.Status,
	})
}
