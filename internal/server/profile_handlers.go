package server

import (
	"volunteerhub/internal/models"
	"volunteerhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

func currentUserID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals("userID").(uint)
	if !ok {
		return 0, models.NewUnauthorizedError("no token found")
	}
	return id, nil
}

// GetProfile returns the authenticated user's profile.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}
	user, err := s.users.GetProfile(c.UserContext(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile applies a profile edit for the authenticated user.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return fail(c, err)
	}

	var upd service.ProfileUpdate
	if err := c.BodyParser(&upd); err != nil {
		return fail(c, models.NewValidationError("invalid request body"))
	}

	user, err := s.users.UpdateProfile(c.UserContext(), userID, upd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// ListStates returns the static state lookup table.
func (s *Server) ListStates(c *fiber.Ctx) error {
	states, err := s.states.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(states)
}
