package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EditableJobInfo is part of job that can be edited by the owning employer
type EditableJobInfo struct {
	Title     string         `gorm:"type:text" json:"title"`
	Desc      string         `gorm:"type:text" json:"description"`
	Req       string         `gorm:"type:text" json:"requirements"`
	Location  string         `gorm:"type:text" json:"location"`
	Category  string         `gorm:"type:text" json:"category"`
	Type      string         `gorm:"type:text" json:"type"`
	SalaryMin int            `json:"salary_min"`
	SalaryMax int            `json:"salary_max"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
}

// Job is gorm model for store job posting data in DB.
// CompanyID is the owning employer and is write-once: ownership of every
// application under the job is derived from it, never stored separately.
type Job struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"company_id"`
	Company   User      `gorm:"foreignKey:CompanyID;references:ID" json:"-"`

	EditableJobInfo
	IsClosed  bool      `gorm:"not null;default:false" json:"is_closed"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

// JobWithCompany is the job detail shape, the job plus the public company
// fields of its employer
type JobWithCompany struct {
	Job
	Company PublicProfile `json:"company"`
}

// JobSummary is the reduced job projection used by application listings
// and the dashboard's recent-jobs panel
type JobSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Type      string    `json:"type"`
	IsClosed  bool      `json:"is_closed"`
	CreatedAt time.Time `json:"created_at"`
}

// ToSummary projects a job down to its dashboard fields
func (j *Job) ToSummary() JobSummary {
	return JobSummary{
		ID:        j.ID,
		Title:     j.Title,
		Location:  j.Location,
		Type:      j.Type,
		IsClosed:  j.IsClosed,
		CreatedAt: j.CreatedAt,
	}
}
