package dto

type KnowledgeEntryResponse struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type CategoryResponse struct {
	Category  string                   `json:"category"`
	Label     string                   `json:"label"`
	Questions []KnowledgeEntryResponse `json:"questions"`
}

type QuestionAnalyticsResponse struct {
	ID          int    `json:"id"`
	Question    string `json:"question"`
	Category    string `json:"category"`
	Count       int    `json:"count"`
	LastAskedAt string `json:"last_asked_at"`
}
