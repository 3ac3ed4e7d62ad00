package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// ApplicationStatusPending indicates that the application has not been reviewed yet
	ApplicationStatusPending = "Pending"
	// ApplicationStatusInReview indicates that the employer is reviewing the application
	ApplicationStatusInReview = "In Review"
	// ApplicationStatusAccepted indicates that the applicant has been hired
	ApplicationStatusAccepted = "Accepted"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "Rejected"
)

// ApplicationStatuses is the closed set of values a status update may carry.
// Any status may move to any other status.
var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusInReview,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// Application represents a job application record.
// The composite unique index is what actually enforces one application per
// (job, applicant) pair; controller pre-checks only give nicer messages.
type Application struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	Status    string    `gorm:"type:text;not null" json:"status"`

	// Resume is copied from the applicant profile at apply time, later
	// profile edits do not change past applications
	Resume string `gorm:"type:text" json:"resume"`

	JobID uint `gorm:"not null;uniqueIndex:idx_applications_job_applicant" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"-"`

	ApplicantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant" json:"applicant_id"`
	Applicant   User      `gorm:"foreignKey:ApplicantID;references:ID" json:"-"`
}

// ApplicationWithJob is an application joined with a reduced job projection,
// returned by GET /applications/mine
type ApplicationWithJob struct {
	Application
	Job JobSummary `json:"job"`
}

// ApplicationDetail is the expanded shape employers see when reviewing:
// the application plus applicant public fields and the parent job title
type ApplicationDetail struct {
	Application
	Applicant PublicProfile `json:"applicant"`
	JobTitle  string        `json:"job_title"`
}
