package server

import (
	"volunteerhub/internal/middleware"
	"volunteerhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

func reportError(c *fiber.Ctx, err error, message string) error {
	middleware.Logger.ErrorContext(c.UserContext(), message, "error", err)
	if appErr, ok := err.(*models.AppError); ok && appErr.Code != "INTERNAL_ERROR" {
		return fail(c, err)
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		&models.AppError{Code: "INTERNAL_ERROR", Message: message})
}

// VolunteersReport returns the aggregated volunteer report as JSON.
func (s *Server) VolunteersReport(c *fiber.Ctx) error {
	rows, err := s.reports.VolunteerRows(c.UserContext())
	if err != nil {
		return reportError(c, err, "Error fetching volunteers report")
	}
	return c.JSON(rows)
}

// VolunteersReportCSV returns the volunteer report as a CSV attachment.
func (s *Server) VolunteersReportCSV(c *fiber.Ctx) error {
	out, err := s.reports.VolunteersCSV(c.UserContext())
	if err != nil {
		return reportError(c, err, "Error fetching volunteers report")
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="volunteers.csv"`)
	return c.Send(out)
}

// VolunteersReportPDF returns the volunteer report as a paginated PDF.
func (s *Server) VolunteersReportPDF(c *fiber.Ctx) error {
	out, err := s.reports.VolunteersPDF(c.UserContext())
	if err != nil {
		return reportError(c, err, "Error generating volunteers PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="volunteers.pdf"`)
	return c.Send(out)
}

// EventsReport returns the aggregated event report as JSON.
func (s *Server) EventsReport(c *fiber.Ctx) error {
	rows, err := s.reports.EventRows(c.UserContext())
	if err != nil {
		return reportError(c, err, "Error fetching events report")
	}
	return c.JSON(rows)
}

// EventsReportCSV returns the event report as a CSV attachment.
func (s *Server) EventsReportCSV(c *fiber.Ctx) error {
	out, err := s.reports.EventsCSV(c.UserContext())
	if err != nil {
		return reportError(c, err, "Error fetching events report")
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="events.csv"`)
	return c.Send(out)
}

// EventsReportPDF returns the event report as a paginated PDF.
func (s *Server) EventsReportPDF(c *fiber.Ctx) error {
	out, err := s.reports.EventsPDF(c.UserContext())
	if err != nil {
		return reportError(c, err, "Error generating events PDF")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="events.pdf"`)
	return c.Send(out)
}
