package request_models

type RecommendRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	BirthDate   string   `json:"birth_date" binding:"required"`
	QuizAnswers []string `json:"quiz_answers" binding:"required,min=1"`
	Location    string   `json:"location,omitempty"`
}

type BiorhythmRequest struct {
	BirthDate  string `json:"birth_date" binding:"required"`
	TargetDate string `json:"target_date,omitempty"`
}

type InterpretRequest struct {
	BirthDate string `json:"birth_date" binding:"required"`
}
