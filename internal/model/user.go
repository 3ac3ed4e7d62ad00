// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// RoleEmployer is the role of users that post jobs and review applicants
	RoleEmployer = "employer"
	// RoleJobseeker is the role of users that browse, save and apply to jobs
	RoleJobseeker = "jobseeker"
)

// User is gorm model for an account of either role.
// Role is set at registration and never changes afterwards.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string  `gorm:"type:text;unique;not null" json:"username"`
	Email    *string `gorm:"type:text" json:"email"`
	Password string  `gorm:"type:text" json:"-"`
	GoogleID string  `gorm:"type:text" json:"-"`
	Role     string  `gorm:"type:text;not null;check:role IN ('employer', 'jobseeker');<-:create" json:"role"`

	EditableProfileInfo
}

// EditableProfileInfo is the part of a user that PATCH /users/profile may change.
// Resume and avatar hold URLs managed by the upload collaborator.
type EditableProfileInfo struct {
	Name        string `gorm:"type:text" json:"name"`
	Avatar      string `gorm:"type:text" json:"avatar"`
	Resume      string `gorm:"type:text" json:"resume"`
	CompanyName string `gorm:"type:text" json:"company_name"`
	CompanyDesc string `gorm:"type:text" json:"company_description"`
	CompanyLogo string `gorm:"type:text" json:"company_logo"`
}

// PublicProfile is the projection of a user that other users may see
type PublicProfile struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
	Email       *string   `json:"email"`
	Avatar      string    `json:"avatar"`
	CompanyName string    `json:"company_name"`
	CompanyDesc string    `json:"company_description"`
	CompanyLogo string    `json:"company_logo"`
}

// ToPublicProfile strips credentials and contact fields from a user record
func (u *User) ToPublicProfile() PublicProfile {
	return PublicProfile{
		ID:          u.ID,
		Role:        u.Role,
		Name:        u.Name,
		Email:       u.Email,
		Avatar:      u.Avatar,
		CompanyName: u.CompanyName,
		CompanyDesc: u.CompanyDesc,
		CompanyLogo: u.CompanyLogo,
	}
}

// UserResponse is returned by login and register endpoints
type UserResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}
