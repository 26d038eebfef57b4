package models

import "time"

// Notification is a persisted message read by client polling. Dismissal is
// durable: dismissed rows are filtered out server-side and never reappear.
type Notification struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	UserID  *uint `gorm:"index" json:"user_id"`
	EventID *uint `gorm:"index" json:"event_id"`

	Title   string `gorm:"size:150;not null" json:"title"`
	Message string `gorm:"type:text" json:"message"`

	Dismissed bool `gorm:"not null;default:false" json:"dismissed"`

	CreatedAt time.Time `json:"created_at"`
}
