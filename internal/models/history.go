package models

import "time"

// HistoryStatus tracks a volunteer's standing for one event.
type HistoryStatus string

const (
	HistoryStatusRegistered HistoryStatus = "Registered"
	HistoryStatusAttended   HistoryStatus = "Attended"
	HistoryStatusNoShow     HistoryStatus = "No-Show"
	HistoryStatusCancelled  HistoryStatus = "Cancelled"
)

// VolunteerHistory links a volunteer to an event. It is the source of truth
// for individual assignments; at most one row exists per (user, event) pair.
//
// UserID is nullable: when an account is removed the row survives with the
// VolunteerName snapshot so reports keep a display name.
type VolunteerHistory struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  *uint  `gorm:"uniqueIndex:idx_volunteer_event" json:"user_id"`
	User    *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	EventID uint   `gorm:"uniqueIndex:idx_volunteer_event;not null" json:"event_id"`
	Event   *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`

	// VolunteerName is snapshotted at registration time.
	VolunteerName string `gorm:"size:100" json:"volunteer_name"`

	Status           HistoryStatus `gorm:"type:varchar(20);not null;default:'Registered'" json:"status"`
	HoursVolunteered float64       `gorm:"not null;default:0" json:"hours_volunteered"`
	Feedback         string        `gorm:"type:text" json:"feedback"`
	// Rating is 1..5 when set.
	Rating *int `json:"rating"`

	ParticipationDate time.Time `json:"participation_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (VolunteerHistory) TableName() string {
	return "volunteer_history"
}

// DisplayName resolves the volunteer's name for reporting: the stored
// snapshot first, then the live profile, else blank.
func (h *VolunteerHistory) DisplayName() string {
	if h.VolunteerName != "" {
		return h.VolunteerName
	}
	if h.User != nil {
		return h.User.FullName
	}
	return ""
}
