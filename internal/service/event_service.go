package service

import (
	"context"
	"time"

	"volunteerhub/internal/models"
	"volunteerhub/internal/repository"
	"volunteerhub/internal/validation"
)

// EventInput carries the client-supplied event fields for create and update.
type EventInput struct {
	Name           string   `json:"name" validate:"required,max=120"`
	Description    string   `json:"description" validate:"required"`
	Location       string   `json:"location" validate:"required,max=200"`
	RequiredSkills []string `json:"required_skills" validate:"required,min=1"`
	Urgency        string   `json:"urgency" validate:"required"`
	Date           string   `json:"date" validate:"required"`
	MaxVolunteers  int      `json:"max_volunteers" validate:"required,gte=1"`
}

// EventService handles event CRUD and the notification side effects of
// mutations.
type EventService struct {
	events  repository.EventRepository
	history repository.HistoryRepository
	notifs  *NotificationService
}

// NewEventService returns a new EventService.
func NewEventService(events repository.EventRepository, history repository.HistoryRepository, notifs *NotificationService) *EventService {
	return &EventService{events: events, history: history, notifs: notifs}
}

func (s *EventService) parseInput(in EventInput) (*models.Event, error) {
	if err := validation.Struct(in); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if !models.ValidUrgency(models.EventUrgency(in.Urgency)) {
		return nil, models.NewValidationError("urgency must be one of: Low, Medium, High, Urgent")
	}
	date, err := time.Parse(models.DateKeyLayout, in.Date)
	if err != nil {
		return nil, models.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return &models.Event{
		Name:           in.Name,
		Description:    in.Description,
		Location:       in.Location,
		RequiredSkills: in.RequiredSkills,
		Urgency:        models.EventUrgency(in.Urgency),
		Date:           date,
		MaxVolunteers:  in.MaxVolunteers,
		Status:         models.EventStatusOpen,
	}, nil
}

// Create validates and stores a new event.
func (s *EventService) Create(ctx context.Context, in EventInput) (*models.Event, error) {
	event, err := s.parseInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get returns one event by id.
func (s *EventService) Get(ctx context.Context, id uint) (*models.Event, error) {
	return s.events.GetByID(ctx, id)
}

// List returns all events ordered by date.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.events.List(ctx)
}

// Update validates and applies a full replacement of the event's editable
// fields, then notifies assigned volunteers. The volunteer counter and
// status are preserved.
func (s *EventService) Update(ctx context.Context, id uint, in EventInput) (*models.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parsed, err := s.parseInput(in)
	if err != nil {
		return nil, err
	}
	if parsed.MaxVolunteers < event.CurrentVolunteers {
		return nil, models.NewValidationError("max_volunteers cannot be lower than the current volunteer count")
	}

	event.Name = parsed.Name
	event.Description = parsed.Description
	event.Location = parsed.Location
	event.RequiredSkills = parsed.RequiredSkills
	event.Urgency = parsed.Urgency
	event.Date = parsed.Date
	event.MaxVolunteers = parsed.MaxVolunteers

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	s.notifs.NotifyEventUpdated(ctx, event)
	return event, nil
}

// Delete removes an event, its history rows, and notifies every assigned
// volunteer of the cancellation. Notification delivery is best effort and
// never blocks the deletion.
func (s *EventService) Delete(ctx context.Context, id uint) error {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return err
	}

	assignees, err := s.history.ListByEvent(ctx, id)
	if err != nil {
		return err
	}

	s.notifs.NotifyEventDeleted(ctx, event, assignees)

	if err := s.history.DeleteByEvent(ctx, id); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}
