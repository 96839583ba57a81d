package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-advisor/internal/models"
	"alfredoptarigan/career-advisor/internal/services"
)

// ResumeFormField is the multipart field carrying the resume document.
const ResumeFormField = "resume"

type AdviceHandler struct {
	advisor       services.AdvisorService
	uploadService services.UploadService
}

func NewAdviceHandler(
	advisor services.AdvisorService,
	uploadService services.UploadService,
) *AdviceHandler {
	return &AdviceHandler{
		advisor:       advisor,
		uploadService: uploadService,
	}
}

// HandleSkillAdvice handles POST /api/skill-advice
func (h *AdviceHandler) HandleSkillAdvice(c *fiber.Ctx) error {
	var req models.SkillQuery

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	result, err := h.advisor.GetSkillAdvice(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}

// HandleResumeAdvice handles POST /api/resume-advice
func (h *AdviceHandler) HandleResumeAdvice(c *fiber.Ctx) error {
	var doc *models.DocumentInput

	// A missing file is reported by the advisor so every entry point shares one check.
	if file, err := c.FormFile(ResumeFormField); err == nil {
		doc, err = h.uploadService.ReadUpload(file)
		if err != nil {
			return respondError(c, err)
		}
	}

	result, err := h.advisor.GetResumeAdvice(c.UserContext(), doc)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(result)
}
