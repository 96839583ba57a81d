package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSkillPrompt creates prompt for career advice from a single skill
func (pb *PromptBuilder) BuildSkillPrompt(skill string) string {
	return fmt.Sprintf("Suggest a career path for someone skilled in %s", skill)
}

// BuildResumePrompt creates prompt for career advice from extracted resume text.
// The text is embedded in full.
func (pb *PromptBuilder) BuildResumePrompt(resumeText string) string {
	return fmt.Sprintf("Analyze this resume and suggest suitable career paths:\n\n%s", resumeText)
}
