// Package report renders aggregated volunteer and event data as CSV and PDF.
package report

// VolunteerRow is one volunteer's aggregated participation record.
type VolunteerRow struct {
	UserID        uint                 `json:"userId"`
	FullName      string               `json:"fullName"`
	Email         string               `json:"email"`
	Skills        []string             `json:"skills"`
	TotalEvents   int                  `json:"totalEvents"`
	TotalHours    float64              `json:"totalHours"`
	Participation []ParticipationEntry `json:"participation"`
}

// ParticipationEntry is a single event a volunteer took part in.
type ParticipationEntry struct {
	EventID   uint    `json:"eventId"`
	EventName string  `json:"eventName"`
	EventDate string  `json:"eventDate"`
	Status    string  `json:"status"`
	Hours     float64 `json:"hours"`
}

// EventRow is one event with its assigned volunteer roster.
type EventRow struct {
	EventID           uint             `json:"eventId"`
	Name              string           `json:"name"`
	Date              string           `json:"date"`
	Location          string           `json:"location"`
	Urgency           string           `json:"urgency"`
	RequiredSkills    []string         `json:"requiredSkills"`
	MaxVolunteers     int              `json:"maxVolunteers"`
	CurrentVolunteers int              `json:"currentVolunteers"`
	Volunteers        []EventVolunteer `json:"volunteers"`
}

// EventVolunteer is one roster entry on an event report row. VolunteerID
// is nil when the account was deleted after the match was recorded.
type EventVolunteer struct {
	VolunteerID *uint   `json:"volunteerId"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Hours       float64 `json:"hours"`
}
