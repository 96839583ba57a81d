package models

// SkillQuery is the body of POST /api/skill-advice.
type SkillQuery struct {
	Skill string `json:"skill"`
}

// DocumentInput is an uploaded résumé held in memory for the lifetime of one request.
type DocumentInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

type AdviceResult struct {
	Advice string `json:"advice"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
