package server

import (
	"volunteerhub/internal/models"
	"volunteerhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateEvent validates and stores a new event.
func (s *Server) CreateEvent(c *fiber.Ctx) error {
	var in service.EventInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}

	event, err := s.events.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Event created successfully",
		"data":    event,
	})
}

// ListEvents returns all events ordered by date.
func (s *Server) ListEvents(c *fiber.Ctx) error {
	events, err := s.events.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(events)
}

// GetEvent returns one event.
func (s *Server) GetEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	event, err := s.events.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(event)
}

// UpdateEvent replaces an event's editable fields and notifies its
// assigned volunteers.
func (s *Server) UpdateEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	var in service.EventInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}

	event, err := s.events.Update(c.UserContext(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Event updated successfully",
		"data":    event,
	})
}

// DeleteEvent removes an event, cleans up its history rows, and sends
// cancellation notices.
func (s *Server) DeleteEvent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := s.events.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Event deleted successfully"})
}
