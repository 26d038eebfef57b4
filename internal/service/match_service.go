package service

import (
	"context"
	"fmt"
	"time"

	"volunteerhub/internal/models"
	"volunteerhub/internal/repository"
)

// MatchCandidate is one event a volunteer is eligible for, annotated with
// whether they are already assigned and, if so, the name recorded on the
// existing assignment.
type MatchCandidate struct {
	Event                models.Event `json:"event"`
	AlreadyMatched       bool         `json:"already_matched"`
	MatchedVolunteerName string       `json:"matched_volunteer_name,omitempty"`
}

// MatchService implements volunteer-to-event matching and match creation.
type MatchService struct {
	users   repository.UserRepository
	events  repository.EventRepository
	history repository.HistoryRepository
	notifs  *NotificationService

	// now is swapped in tests to pin the reference date.
	now func() time.Time
}

// NewMatchService returns a new MatchService.
func NewMatchService(users repository.UserRepository, events repository.EventRepository, history repository.HistoryRepository, notifs *NotificationService) *MatchService {
	return &MatchService{
		users:   users,
		events:  events,
		history: history,
		notifs:  notifs,
		now:     time.Now,
	}
}

// skillOverlap reports whether the volunteer has at least one of the
// event's required skills. Events with no required skills never match.
func skillOverlap(user *models.User, event *models.Event) bool {
	if len(event.RequiredSkills) == 0 {
		return false
	}
	for _, skill := range event.RequiredSkills {
		if user.HasSkill(skill) {
			return true
		}
	}
	return false
}

// availableFor applies the date filter: past events are excluded outright,
// then the event date must be in the volunteer's availability list. An
// empty availability list means available for any future date.
func (s *MatchService) availableFor(user *models.User, event *models.Event) bool {
	today := s.now().UTC().Truncate(24 * time.Hour)
	if event.Date.UTC().Truncate(24 * time.Hour).Before(today) {
		return false
	}
	if len(user.Availability) == 0 {
		return true
	}
	return user.AvailableOn(event.DateKey())
}

// FindMatches returns the events the volunteer is eligible for, ordered by
// event date, each annotated with whether the volunteer is already assigned.
func (s *MatchService) FindMatches(ctx context.Context, userID uint) ([]MatchCandidate, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	matchedNames := map[uint]string{}
	rows, err := s.history.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		matchedNames[rows[i].EventID] = rows[i].DisplayName()
	}

	candidates := make([]MatchCandidate, 0)
	for i := range events {
		e := &events[i]
		if !s.availableFor(user, e) {
			continue
		}
		if !skillOverlap(user, e) {
			continue
		}
		name, already := matchedNames[e.ID]
		candidates = append(candidates, MatchCandidate{
			Event:                events[i],
			AlreadyMatched:       already,
			MatchedVolunteerName: name,
		})
	}
	return candidates, nil
}

// CreateMatch assigns a volunteer to an event. The capacity check and the
// counter increment happen atomically in the repository; duplicates and
// full events surface as conflict errors.
func (s *MatchService) CreateMatch(ctx context.Context, userID, eventID uint) (*models.VolunteerHistory, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != models.EventStatusOpen {
		return nil, models.NewValidationError("Event is not open for registration")
	}

	uid := user.ID
	h := &models.VolunteerHistory{
		UserID:            &uid,
		EventID:           event.ID,
		VolunteerName:     user.FullName,
		Status:            models.HistoryStatusRegistered,
		ParticipationDate: event.Date,
	}

	if err := s.events.RegisterVolunteer(ctx, h); err != nil {
		return nil, err
	}

	title := "You've been matched!"
	message := fmt.Sprintf("You have been assigned to %q on %s at %s.", event.Name, event.DateKey(), event.Location)
	eid := event.ID
	if _, err := s.notifs.Create(ctx, user.ID, &eid, title, message); err != nil {
		return nil, err
	}
	return h, nil
}
