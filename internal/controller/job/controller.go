// Package job provides HTTP handlers for job posting operations.
package job

import (
	"JobLink-backend/internal/database"
	"JobLink-backend/internal/model"
	"JobLink-backend/internal/utilities"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// JobController handles job posting related endpoints
type JobController struct {
	DB *database.DBinstanceStruct
}

// NewJobController creates a new instance of JobController with the provided database connection.
func NewJobController(db *database.DBinstanceStruct) *JobController {
	return &JobController{
		DB: db,
	}
}

// CreateJobHandler handles the creation of a new job posting by an employer.
// @Summary Create job posting based on given json structure
// @Description Only employer have access to this endpoint
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Job body model.EditableJobInfo true "Input job information"
// @Success 201 {object} model.Job "Successfully create job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (jc *JobController) CreateJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	// construct job from request
	job := model.Job{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&job.EditableJobInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	// save job
	job.CompanyID = user.ID
	if err := jc.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create job: ", err),
		})
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJobsHandler fetches open jobs that match query from the database
// and returns them as a JSON response.
// @Summary Get open jobs based on query
// @Description Every query are not required. Closed jobs are excluded unless closed=true.
// @Tags Job
// @Produce json
// @Param search query string false "Search from job title with substring matching and case insensitive"
// @Param location query string false "Search from location with substring matching and case insensitive"
// @Param category query string false "Category field, must exactly match to get result"
// @Param type query string false "Job type field, must exactly match to get result"
// @Param closed query boolean false "Include closed jobs if true"
// @Success 200 {array} model.Job "Return matching job(s), newest first"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) GetJobsHandler(c *gin.Context) {

	rawSearch := c.Query("search")
	rawLocation := c.Query("location")
	rawCategory := c.Query("category")
	rawType := c.Query("type")
	rawClosed := c.Query("closed")

	result := jc.DB.Model(&model.Job{})

	includeClosed, err := strconv.ParseBool(rawClosed)
	if err != nil || !includeClosed {
		result = result.Where("is_closed = ?", false)
	}

	if rawSearch != "" {
		result = result.Where("title ILIKE ?", "%"+rawSearch+"%")
	}

	if rawLocation != "" {
		result = result.Where("location ILIKE ?", "%"+rawLocation+"%")
	}

	if rawCategory != "" {
		result = result.Where("category = ?", rawCategory)
	}

	if rawType != "" {
		result = result.Where("type = ?", rawType)
	}

	var jobs []model.Job
	if err := result.Order("created_at DESC").Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve jobs: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJobByIDHandler returns one job by its id.
// @Summary Get job by ID
// @Tags Job
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} model.JobWithCompany "The job with its company info"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJobByIDHandler(c *gin.Context) {
	var job model.Job
	if err := jc.DB.Preload("Company").First(&job, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, model.JobWithCompany{
		Job:     job,
		Company: job.Company.ToPublicProfile(),
	})
}

// EditJobHandler patches the editable fields of a job owned by the caller.
// @Summary Edit a job posting
// @Description Only the owning employer have access to this endpoint
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Param Job body model.EditableJobInfo true "Fields to update"
// @Success 200 {object} model.Job "Updated job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Caller does not own this job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [patch]
func (jc *JobController) EditJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var job model.Job
	err = jc.DB.First(&job, "id = ?", c.Param("id")).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}
	if err != nil || job.CompanyID != user.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Not authorized to edit this job",
		})
		return
	}

	var patch model.EditableJobInfo
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	utilities.MergeNonEmpty(&job.EditableJobInfo, &patch)

	if err := jc.DB.Save(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, job)
}

// CloseJobHandler soft-closes a job. Closed jobs stay in place for past
// applications and analytics; they are never deleted.
// @Summary Close a job posting
// @Description Only the owning employer have access to this endpoint
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Job ID"
// @Success 200 {object} utilities.MessageResponse "Job closed"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Caller does not own this job"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/close [put]
func (jc *JobController) CloseJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var job model.Job
	err = jc.DB.First(&job, "id = ?", c.Param("id")).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}
	if err != nil || job.CompanyID != user.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Not authorized to close this job",
		})
		return
	}

	if err := jc.DB.Model(&job).Update("is_closed", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to close job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job closed"})
}
