package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedJob is a bookmark a jobseeker puts on a job, independent of any
// application. The unique index keeps the relation at most one per pair.
type SavedJob struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	JobID uint `gorm:"not null;uniqueIndex:idx_saved_jobs_job_jobseeker" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	JobseekerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_job_jobseeker" json:"jobseeker_id"`
	Jobseeker   User      `gorm:"foreignKey:JobseekerID;references:ID" json:"-"`
}

// SavedJobResponse expands a bookmark with its job and the job's employer
// public company fields, as shown on the saved-jobs page
type SavedJobResponse struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Job       Job       `json:"job"`
	Company   PublicProfile `json:"company"`
}
