package server

import (
	"strconv"

	"volunteerhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createNotificationRequest struct {
	UserID  uint   `json:"userId"`
	EventID *uint  `json:"eventId"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type notifyMatchedRequest struct {
	UserIDs []uint `json:"userIds"`
	EventID *uint  `json:"eventId"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type notifyEventDeletedRequest struct {
	EventID uint `json:"eventId"`
}

// CreateNotification stores a single notification for one user.
func (s *Server) CreateNotification(c *fiber.Ctx) error {
	var req createNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}
	if req.UserID == 0 {
		return fail(c, models.NewValidationError("userId is required"))
	}

	n, err := s.notifs.Create(c.UserContext(), req.UserID, req.EventID, req.Title, req.Message)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}

// NotifyMatched sends one notification per listed user. The first storage
// failure aborts the whole call with a 500.
func (s *Server) NotifyMatched(c *fiber.Ctx) error {
	var req notifyMatchedRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}
	if len(req.UserIDs) == 0 {
		return fail(c, models.NewValidationError("userIds is required"))
	}
	if req.Title == "" {
		return fail(c, models.NewValidationError("title is required"))
	}

	sent, err := s.notifs.NotifyMatched(c.UserContext(), req.UserIDs, req.EventID, req.Title, req.Message)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sent": sent})
}

// NotifyEventDeleted sends cancellation notices for an event: one per
// assigned volunteer plus one audit record, best effort. The event itself
// is not removed here.
func (s *Server) NotifyEventDeleted(c *fiber.Ctx) error {
	var req notifyEventDeletedRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}
	if req.EventID == 0 {
		return fail(c, models.NewValidationError("eventId is required"))
	}

	event, err := s.events.Get(c.UserContext(), req.EventID)
	if err != nil {
		return fail(c, err)
	}

	notified, err := s.notifs.CancelEventNotices(c.UserContext(), event)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"notified": notified})
}

// ListNotifications returns a user's undismissed notifications, newest
// first.
func (s *Server) ListNotifications(c *fiber.Ctx) error {
	raw := c.Query("userId")
	userID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || userID == 0 {
		return fail(c, models.NewValidationError("userId query parameter is required"))
	}

	rows, err := s.notifs.ListForUser(c.UserContext(), uint(userID))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(rows)
}

// DismissNotification marks a notification dismissed so it never reappears
// in any listing.
func (s *Server) DismissNotification(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := s.notifs.Dismiss(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification dismissed"})
}
