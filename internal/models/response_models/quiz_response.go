package response_models

type QuizQuestion struct {
	ID       int      `json:"id"`
	Category string   `json:"category"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"`
	Total     int            `json:"total"`
}
