package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"alfredoptarigan/career-advisor/internal/models"
)

const (
	FallbackSkillAdvice  = "No advice available."
	FallbackResumeAdvice = "No suggestions available."
)

type AdvisorService interface {
	GetSkillAdvice(ctx context.Context, query models.SkillQuery) (*models.AdviceResult, error)
	GetResumeAdvice(ctx context.Context, doc *models.DocumentInput) (*models.AdviceResult, error)
}

type advisorService struct {
	llmService    LLMService
	extractor     DocumentExtractor
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

func NewAdvisorService(
	llmService LLMService,
	extractor DocumentExtractor,
	timeout time.Duration,
) AdvisorService {
	return &advisorService{
		llmService:    llmService,
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

// GetSkillAdvice implements AdvisorService. An empty skill is forwarded as is.
func (a *advisorService) GetSkillAdvice(ctx context.Context, query models.SkillQuery) (*models.AdviceResult, error) {
	log.Printf("🤖 Generating career advice for skill %q\n", query.Skill)

	prompt := a.promptBuilder.BuildSkillPrompt(query.Skill)

	advice, err := a.complete(ctx, prompt, FallbackSkillAdvice)
	if err != nil {
		log.Printf("❌ Skill advice failed: %v\n", err)
		return nil, err
	}

	return &models.AdviceResult{Advice: advice}, nil
}

// GetResumeAdvice implements AdvisorService.
func (a *advisorService) GetResumeAdvice(ctx context.Context, doc *models.DocumentInput) (*models.AdviceResult, error) {
	// A zero-byte attachment counts as missing.
	if doc == nil || len(doc.Data) == 0 {
		return nil, fmt.Errorf("resume file: %w", ErrMissingInput)
	}

	log.Printf("📄 Resume uploaded: %s (%d bytes)\n", doc.Filename, len(doc.Data))

	content, err := a.extractor.ExtractResumeText(doc)
	if err != nil {
		log.Printf("❌ Failed to extract resume text from %s: %v\n", doc.Filename, err)
		return nil, err
	}

	log.Printf("📄 Extracted %d characters from %d page(s) of %s resume\n", len(content.Text), content.PageCount, content.Format)

	prompt := a.promptBuilder.BuildResumePrompt(content.Text)

	log.Println("🤖 Analyzing resume with LLM...")
	advice, err := a.complete(ctx, prompt, FallbackResumeAdvice)
	if err != nil {
		log.Printf("❌ Resume advice failed: %v\n", err)
		return nil, err
	}

	return &models.AdviceResult{Advice: advice}, nil
}

// complete makes exactly one model call bounded by the configured timeout.
func (a *advisorService) complete(ctx context.Context, prompt, fallback string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	response, err := a.llmService.Complete(ctx, prompt)
	if err != nil {
		return "", &AdviceGenerationError{Err: err}
	}

	if strings.TrimSpace(response) == "" {
		log.Println("⚠️ Empty completion received, using fallback advice")
		return fallback, nil
	}

	return response, nil
}
