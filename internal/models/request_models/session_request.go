package request_models

type SaveSessionRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	BirthDate   string   `json:"birth_date" binding:"required"`
	QuizAnswers []string `json:"quiz_answers" binding:"required,min=1"`
	Result      string   `json:"result" binding:"required"`
	ImageURL    string   `json:"image_url,omitempty"`
	Location    string   `json:"location,omitempty"`
}

type LikeRequest struct {
	SessionID   string `json:"session_id,omitempty" binding:"omitempty,uuid"`
	Destination string `json:"destination,omitempty"`
	Email       string `json:"email,omitempty"`
	BirthDate   string `json:"birth_date,omitempty"`
}
