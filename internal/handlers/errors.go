package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-advisor/internal/models"
	"alfredoptarigan/career-advisor/internal/services"
)

const (
	msgMissingResume  = "No resume file uploaded."
	msgInternalError  = "Internal server error."
	msgUnreadableFile = "Could not read the uploaded resume."
	msgFileTooLarge   = "Resume file is too large."
)

// ErrorStatus maps a service error onto the HTTP status and message returned to clients.
// AdviceGenerationError and anything unrecognised become a generic 500.
func ErrorStatus(err error) (int, string) {
	var parseErr *services.DocumentParseError

	switch {
	case errors.Is(err, services.ErrMissingInput):
		return fiber.StatusBadRequest, msgMissingResume
	case errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusBadRequest, msgFileTooLarge
	case errors.As(err, &parseErr):
		return fiber.StatusInternalServerError, msgUnreadableFile
	default:
		return fiber.StatusInternalServerError, msgInternalError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status, message := ErrorStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s failed: %v\n", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(models.ErrorResponse{Error: message})
}

// ErrorHandler renders errors that escape the handlers (body limit, panics, unknown routes)
// in the same { "error": ... } shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := msgInternalError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("❌ Unhandled error on %s %s: %v\n", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(models.ErrorResponse{Error: message})
}
