// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// UserRole defines the access level carried in the auth token.
type UserRole string

const (
	// UserRoleVolunteer is the default role assigned at registration.
	UserRoleVolunteer UserRole = "volunteer"
	// UserRoleAdmin grants access to the reporting endpoints.
	UserRoleAdmin UserRole = "admin"
)

// User holds both the credentials and the volunteer profile. Credentials are
// immutable after registration; profile fields are mutated via profile-edit.
type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Username string   `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"not null" json:"-"`
	Role     UserRole `gorm:"type:varchar(20);not null;default:'volunteer'" json:"role"`

	FullName  string `gorm:"size:100" json:"full_name"`
	Address1  string `gorm:"size:120" json:"address1"`
	Address2  string `gorm:"size:120" json:"address2"`
	City      string `gorm:"size:80" json:"city"`
	StateCode string `gorm:"size:2" json:"state_code"`
	Zip       string `gorm:"size:10" json:"zip"`

	// Skills is ordered and may contain duplicates.
	Skills      []string `gorm:"serializer:json" json:"skills"`
	Preferences string   `gorm:"type:text" json:"preferences"`
	// Availability holds ISO dates (YYYY-MM-DD). Empty means "always available".
	Availability []string `gorm:"serializer:json" json:"availability"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// HasSkill reports whether the volunteer lists the given skill.
func (u *User) HasSkill(skill string) bool {
	for _, s := range u.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// AvailableOn reports whether the given date key (YYYY-MM-DD) is in the
// volunteer's availability list. Callers must handle the empty-list
// "always available" case themselves.
func (u *User) AvailableOn(dateKey string) bool {
	for _, d := range u.Availability {
		if d == dateKey {
			return true
		}
	}
	return false
}
