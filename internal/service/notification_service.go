package service

import (
	"context"
	"fmt"

	"volunteerhub/internal/middleware"
	"volunteerhub/internal/models"
	"volunteerhub/internal/repository"
)

// FanOutResult reports the outcome of one recipient's delivery during a
// fan-out. Partial failure is normal: callers get the full per-recipient
// picture instead of a single error.
type FanOutResult struct {
	UserID uint   `json:"user_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// NotificationService creates notifications and fans them out to event
// assignees.
type NotificationService struct {
	notifs  repository.NotificationRepository
	history repository.HistoryRepository
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(notifs repository.NotificationRepository, history repository.HistoryRepository) *NotificationService {
	return &NotificationService{notifs: notifs, history: history}
}

// Create stores a single notification addressed to one user.
func (s *NotificationService) Create(ctx context.Context, userID uint, eventID *uint, title, message string) (*models.Notification, error) {
	if title == "" {
		return nil, models.NewValidationError("title is required")
	}
	n := &models.Notification{
		UserID:  &userID,
		EventID: eventID,
		Title:   title,
		Message: message,
	}
	if err := s.notifs.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// ListForUser returns the user's undismissed notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.notifs.ListByUser(ctx, userID)
}

// Dismiss marks a notification dismissed so it never reappears.
func (s *NotificationService) Dismiss(ctx context.Context, id uint) error {
	return s.notifs.Dismiss(ctx, id)
}

// NotifyMatched sends one notification per listed user. Unlike FanOut it
// aborts on the first storage failure, returning how many were delivered.
func (s *NotificationService) NotifyMatched(ctx context.Context, userIDs []uint, eventID *uint, title, message string) (int, error) {
	sent := 0
	for _, id := range userIDs {
		uid := id
		n := &models.Notification{
			UserID:  &uid,
			EventID: eventID,
			Title:   title,
			Message: message,
		}
		if err := s.notifs.Create(ctx, n); err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

// FanOutToAssignees delivers one notification to every volunteer assigned to
// the event. Each recipient is attempted independently; failures are counted
// and reported per recipient.
func (s *NotificationService) FanOutToAssignees(ctx context.Context, eventID uint, title, message string) ([]FanOutResult, error) {
	rows, err := s.history.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	results := make([]FanOutResult, 0, len(rows))
	for _, h := range rows {
		if h.UserID == nil {
			continue
		}
		uid := *h.UserID
		n := &models.Notification{
			UserID:  &uid,
			EventID: &eventID,
			Title:   title,
			Message: message,
		}
		res := FanOutResult{UserID: uid, OK: true}
		if err := s.notifs.Create(ctx, n); err != nil {
			res.OK = false
			res.Error = err.Error()
			middleware.NotificationFanoutFailures.Inc()
			middleware.Logger.WarnContext(ctx, "notification fan-out delivery failed",
				"event_id", eventID, "user_id", uid, "error", err)
		}
		results = append(results, res)
	}
	return results, nil
}

// NotifyEventUpdated fans an update notice out to the event's assignees.
// A failed assignee lookup is logged and swallowed so the triggering event
// mutation still succeeds.
func (s *NotificationService) NotifyEventUpdated(ctx context.Context, event *models.Event) {
	title := "Event Updated"
	message := fmt.Sprintf("Event %q has been updated. Please review the latest details.", event.Name)
	if _, err := s.FanOutToAssignees(ctx, event.ID, title, message); err != nil {
		middleware.Logger.WarnContext(ctx, "event update fan-out skipped",
			"event_id", event.ID, "error", err)
	}
}

// CancelEventNotices looks up the event's assignees and sends the full
// cancellation fan-out. Returns the number of notices written including the
// audit record.
func (s *NotificationService) CancelEventNotices(ctx context.Context, event *models.Event) (int, error) {
	rows, err := s.history.ListByEvent(ctx, event.ID)
	if err != nil {
		return 0, err
	}
	s.NotifyEventDeleted(ctx, event, rows)

	notified := 1
	for i := range rows {
		if rows[i].UserID != nil {
			notified++
		}
	}
	return notified, nil
}

// NotifyEventDeleted sends a cancellation notice to every assignee plus one
// unaddressed audit record for the event itself. Delivery is best effort.
func (s *NotificationService) NotifyEventDeleted(ctx context.Context, event *models.Event, assignees []models.VolunteerHistory) {
	title := "Event Cancelled"
	message := fmt.Sprintf("Event %q scheduled for %s has been cancelled.", event.Name, event.DateKey())

	for _, h := range assignees {
		if h.UserID == nil {
			continue
		}
		uid := *h.UserID
		eid := event.ID
		n := &models.Notification{
			UserID:  &uid,
			EventID: &eid,
			Title:   title,
			Message: message,
		}
		if err := s.notifs.Create(ctx, n); err != nil {
			middleware.NotificationFanoutFailures.Inc()
			middleware.Logger.WarnContext(ctx, "cancellation notice delivery failed",
				"event_id", event.ID, "user_id", uid, "error", err)
		}
	}

	eid := event.ID
	audit := &models.Notification{
		EventID: &eid,
		Title:   title,
		Message: message,
	}
	if err := s.notifs.Create(ctx, audit); err != nil {
		middleware.Logger.WarnContext(ctx, "cancellation audit record failed",
			"event_id", event.ID, "error", err)
	}
}
