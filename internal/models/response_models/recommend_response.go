package response_models

import "wanderpersona/pkg/utils"

// RecommendationResult is the assembled outcome delivered to the frontend:
// the parsed model output plus the generated (or placeholder) image.
type RecommendationResult struct {
	SessionID       string                      `json:"session_id,omitempty"`
	PersonaTitle    string                      `json:"personaTitle"`
	DestinationName string                      `json:"destinationName"`
	Analysis        string                      `json:"analysis"`
	Recommendations []utils.RecommendationEntry `json:"recommendations"`
	Budget          string                      `json:"budget"`
	Transport       string                      `json:"transport"`
	Tip             string                      `json:"tip"`
	Popularity      string                      `json:"popularity"`
	ImageURL        string                      `json:"imageUrl"`
}

type BiorhythmResponse struct {
	Physical     float64 `json:"physical"`
	Emotional    float64 `json:"emotional"`
	Intellectual float64 `json:"intellectual"`
	Perceptual   float64 `json:"perceptual"`
}

type BiorhythmPoint struct {
	Date         string  `json:"date"`
	Physical     float64 `json:"physical"`
	Emotional    float64 `json:"emotional"`
	Intellectual float64 `json:"intellectual"`
	Perceptual   float64 `json:"perceptual"`
}

type BiorhythmSeriesResponse struct {
	Today  BiorhythmResponse `json:"today"`
	Series []BiorhythmPoint  `json:"series"`
}

type InterpretResponse struct {
	Interpretation      string `json:"interpretation"`
	ShortInterpretation string `json:"shortInterpretation"`
}
