package models

import "time"

// EventUrgency is an event priority label.
type EventUrgency string

const (
	UrgencyLow    EventUrgency = "Low"
	UrgencyMedium EventUrgency = "Medium"
	UrgencyHigh   EventUrgency = "High"
	UrgencyUrgent EventUrgency = "Urgent"
)

// ValidUrgency reports whether the given value is a known urgency label.
func ValidUrgency(u EventUrgency) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// EventStatus defines the lifecycle state of an event.
type EventStatus string

const (
	// EventStatusOpen indicates the event accepts volunteer registrations.
	EventStatusOpen EventStatus = "open"
	// EventStatusClosed indicates registration is closed.
	EventStatusClosed EventStatus = "closed"
	// EventStatusCancelled indicates the event was called off.
	EventStatusCancelled EventStatus = "cancelled"
)

// DateKeyLayout is the wire format for event dates and availability entries.
const DateKeyLayout = "2006-01-02"

// Event represents a posted volunteering opportunity.
//
// CurrentVolunteers is a derived counter over VolunteerHistory rows; it is
// only ever mutated inside the same transaction that inserts or updates the
// corresponding history row, keeping current <= max.
type Event struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Name           string       `gorm:"size:120;not null" json:"name"`
	Description    string       `gorm:"type:text" json:"description"`
	Location       string       `gorm:"size:200" json:"location"`
	RequiredSkills []string     `gorm:"serializer:json;not null" json:"required_skills"`
	Urgency        EventUrgency `gorm:"type:varchar(10);not null" json:"urgency"`
	Date           time.Time    `gorm:"not null" json:"date"`

	MaxVolunteers     int `gorm:"not null" json:"max_volunteers"`
	CurrentVolunteers int `gorm:"not null;default:0" json:"current_volunteers"`

	Status EventStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DateKey returns the event date in YYYY-MM-DD form for availability checks.
func (e *Event) DateKey() string {
	return e.Date.UTC().Format(DateKeyLayout)
}

// IsFull reports whether the event has reached volunteer capacity.
func (e *Event) IsFull() bool {
	return e.CurrentVolunteers >= e.MaxVolunteers
}
