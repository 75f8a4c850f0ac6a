package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type MessageResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	IsFromUser bool   `json:"is_from_user"`
	Timestamp  string `json:"timestamp"`
}

type ChatResponse struct {
	Reply      MessageResponse `json:"reply"`
	Source     string          `json:"source"`
	Intent     string          `json:"intent,omitempty"`
	Confidence float64         `json:"confidence"`
	EntryID    int             `json:"entry_id,omitempty"`
}

type TranscriptResponse struct {
	Messages []MessageResponse `json:"messages"`
	Pending  bool              `json:"pending"`
}
