package server

import (
	"volunteerhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type createMatchRequest struct {
	VolunteerID uint `json:"volunteerId"`
	EventID     uint `json:"eventId"`
}

// FindMatches returns the events the given volunteer is eligible for.
func (s *Server) FindMatches(c *fiber.Ctx) error {
	volunteerID, err := parseID(c, "volunteerId")
	if err != nil {
		return fail(c, err)
	}

	candidates, err := s.matches.FindMatches(c.UserContext(), volunteerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(candidates)
}

// CreateMatch assigns a volunteer to an event.
func (s *Server) CreateMatch(c *fiber.Ctx) error {
	var req createMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}
	if req.VolunteerID == 0 || req.EventID == 0 {
		return fail(c, models.NewValidationError("volunteerId and eventId are required"))
	}

	match, err := s.matches.CreateMatch(c.UserContext(), req.VolunteerID, req.EventID)
	if err != nil {
		return fail(c, err)
	}

	event, err := s.events.Get(c.UserContext(), req.EventID)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"match": match,
		"event": event,
	})
}
