package response_models

type SessionResponse struct {
	ID                     string   `json:"id"`
	Email                  string   `json:"email"`
	BirthDate              string   `json:"birth_date"`
	Location               string   `json:"location"`
	QuizAnswers            []string `json:"quiz_answers"`
	RecommendedDestination string   `json:"recommended_destination"`
	Result                 any      `json:"result"`
	ImageURL               string   `json:"image_url"`
	Likes                  int      `json:"likes"`
	Liked                  bool     `json:"liked"`
	CreatedAt              int64    `json:"created_at"`
}

type LikeResponse struct {
	SessionID string `json:"session_id"`
	Likes     int    `json:"likes"`
	Liked     bool   `json:"liked"`
}

type LeaderboardEntry struct {
	SessionID       string `json:"session_id"`
	DestinationName string `json:"destination_name"`
	PersonaTitle    string `json:"persona_title"`
	ImageURL        string `json:"image_url"`
	Likes           int    `json:"likes"`
}

type SimilarSessionEntry struct {
	SessionID       string  `json:"session_id"`
	DestinationName string  `json:"destination_name"`
	Distance        float64 `json:"distance"`
}
