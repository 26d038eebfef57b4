package service

import (
	"context"

	"volunteerhub/internal/middleware"
	"volunteerhub/internal/models"
	"volunteerhub/internal/report"
	"volunteerhub/internal/repository"
)

// ReportService aggregates history data into report rows and renders them
// in the requested format.
type ReportService struct {
	users   repository.UserRepository
	events  repository.EventRepository
	history repository.HistoryRepository
}

// NewReportService returns a new ReportService.
func NewReportService(users repository.UserRepository, events repository.EventRepository, history repository.HistoryRepository) *ReportService {
	return &ReportService{users: users, events: events, history: history}
}

// VolunteerRows builds one row per registered volunteer with their
// aggregated participation. Volunteers with no history get zero totals.
func (s *ReportService) VolunteerRows(ctx context.Context) ([]report.VolunteerRow, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.history.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byUser := map[uint][]models.VolunteerHistory{}
	for _, h := range rows {
		if h.UserID == nil {
			continue
		}
		byUser[*h.UserID] = append(byUser[*h.UserID], h)
	}

	out := make([]report.VolunteerRow, 0, len(users))
	for _, u := range users {
		row := report.VolunteerRow{
			UserID:        u.ID,
			FullName:      u.FullName,
			Email:         u.Email,
			Skills:        u.Skills,
			Participation: []report.ParticipationEntry{},
		}
		for _, h := range byUser[u.ID] {
			entry := report.ParticipationEntry{
				EventID: h.EventID,
				Status:  string(h.Status),
				Hours:   h.HoursVolunteered,
			}
			if h.Event != nil {
				entry.EventName = h.Event.Name
				entry.EventDate = h.Event.DateKey()
			}
			row.Participation = append(row.Participation, entry)
			row.TotalEvents++
			row.TotalHours += h.HoursVolunteered
		}
		out = append(out, row)
	}
	return out, nil
}

// EventRows builds one row per event with its volunteer roster. Roster
// names fall back to the registration-time snapshot when the account is
// gone.
func (s *ReportService) EventRows(ctx context.Context) ([]report.EventRow, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.history.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byEvent := map[uint][]models.VolunteerHistory{}
	for _, h := range rows {
		byEvent[h.EventID] = append(byEvent[h.EventID], h)
	}

	out := make([]report.EventRow, 0, len(events))
	for _, e := range events {
		row := report.EventRow{
			EventID:           e.ID,
			Name:              e.Name,
			Date:              e.DateKey(),
			Location:          e.Location,
			Urgency:           string(e.Urgency),
			RequiredSkills:    e.RequiredSkills,
			MaxVolunteers:     e.MaxVolunteers,
			CurrentVolunteers: e.CurrentVolunteers,
			Volunteers:        []report.EventVolunteer{},
		}
		for i := range byEvent[e.ID] {
			h := &byEvent[e.ID][i]
			row.Volunteers = append(row.Volunteers, report.EventVolunteer{
				VolunteerID: h.UserID,
				Name:        h.DisplayName(),
				Status:      string(h.Status),
				Hours:       h.HoursVolunteered,
			})
		}
		out = append(out, row)
	}
	return out, nil
}

// VolunteersCSV renders the volunteer report as CSV.
func (s *ReportService) VolunteersCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.VolunteerRows(ctx)
	if err != nil {
		return nil, err
	}
	middleware.ReportGenerations.WithLabelValues("volunteers", "csv").Inc()
	return report.VolunteersCSV(rows), nil
}

// VolunteersPDF renders the volunteer report as a paginated PDF.
func (s *ReportService) VolunteersPDF(ctx context.Context) ([]byte, error) {
	rows, err := s.VolunteerRows(ctx)
	if err != nil {
		return nil, err
	}
	out, err := report.VolunteersPDF(rows)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	middleware.ReportGenerations.WithLabelValues("volunteers", "pdf").Inc()
	return out, nil
}

// EventsCSV renders the event report as CSV.
func (s *ReportService) EventsCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.EventRows(ctx)
	if err != nil {
		return nil, err
	}
	middleware.ReportGenerations.WithLabelValues("events", "csv").Inc()
	return report.EventsCSV(rows), nil
}

// EventsPDF renders the event report as a paginated PDF.
func (s *ReportService) EventsPDF(ctx context.Context) ([]byte, error) {
	rows, err := s.EventRows(ctx)
	if err != nil {
		return nil, err
	}
	out, err := report.EventsPDF(rows)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	middleware.ReportGenerations.WithLabelValues("events", "pdf").Inc()
	return out, nil
}
