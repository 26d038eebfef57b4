package models

// State is static reference data for the profile form. Seeded once, never
// mutated afterwards.
type State struct {
	Code   string `gorm:"primaryKey;size:2" json:"code"`
	Name   string `gorm:"size:50;not null" json:"name"`
	Region string `gorm:"size:30" json:"region"`
}
