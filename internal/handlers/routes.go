package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the advice API on app.
func RegisterRoutes(app *fiber.App, adviceHandler *AdviceHandler) {
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/skill-advice", adviceHandler.HandleSkillAdvice)
	api.Post("/resume-advice", adviceHandler.HandleResumeAdvice)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Career Advisor API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/health",
				"POST /api/skill-advice",
				"POST /api/resume-advice",
			},
		})
	})
}
