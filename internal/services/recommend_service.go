package services

import (
	"context"
	"log"
	"time"

	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/models/response_models"
	"wanderpersona/pkg/utils"
)

// PlaceholderImageURL is served when image generation fails. A missing image
// never fails the recommendation itself.
const PlaceholderImageURL = "/default-image.png"

type RecommendServiceInterface interface {
	Recommend(ctx context.Context, request request_models.RecommendRequest) (*response_models.RecommendationResult, error)
}

type RecommendService struct {
	settings   SettingsServiceInterface
	biorhythm  BiorhythmServiceInterface
	textClient utils.TextGenerationClient
	imgClient  utils.ImageGenerationClient
}

func NewRecommendService(
	settings SettingsServiceInterface,
	biorhythm BiorhythmServiceInterface,
	textClient utils.TextGenerationClient,
	imgClient utils.ImageGenerationClient,
) RecommendServiceInterface {
	return &RecommendService{
		settings:   settings,
		biorhythm:  biorhythm,
		textClient: textClient,
		imgClient:  imgClient,
	}
}

// Recommend runs the full pipeline: resolve settings, generate and validate
// the destination JSON, then generate the hero image. Text failures abort the
// request; image failures fall back to the placeholder.
func (s *RecommendService) Recommend(ctx context.Context, request request_models.RecommendRequest) (*response_models.RecommendationResult, error) {
	birthDate, err := time.Parse("2006-01-02", request.BirthDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if len(request.QuizAnswers) == 0 {
		return nil, utils.ErrInvalidInput
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	today := utils.NowKST()
	rhythm := s.biorhythm.Compute(birthDate, today)

	location := request.Location
	if location == "" {
		location = "local"
	}

	// The prompt gets the raw [-1, 1] scores; rescaled percentages are for
	// the interpretation call only.
	prompt := utils.BuildRecommendationPrompt(utils.PromptInput{
		Physical:     rhythm.Physical,
		Emotional:    rhythm.Emotional,
		Intellectual: rhythm.Intellectual,
		Perceptual:   rhythm.Perceptual,
		QuizAnswers:  request.QuizAnswers,
		Popularity:   "",
		Location:     location,
	})

	startTime := time.Now()

	raw, err := s.textClient.GenerateJSON(ctx, settings.TextModel, settings.TextModelKey, prompt)
	if err != nil {
		log.Printf("Destination generation failed: %v", err)
		return nil, utils.ErrGenerationFailed
	}

	log.Printf("Destination generation took %s", time.Since(startTime))

	payload, err := utils.ParseRecommendationPayload(utils.CleanJSONResponse(raw))
	if err != nil {
		return nil, err
	}

	imageURL := PlaceholderImageURL
	if payload.ImagePrompt != "" {
		media, imgErr := s.imgClient.GenerateImage(ctx, settings.ImageModel, settings.ImageModelKey, payload.ImagePrompt)
		if imgErr != nil {
			log.Printf("Image generation failed, using placeholder: %v", imgErr)
		} else {
			imageURL = media.URL
		}
	}

	return &response_models.RecommendationResult{
		PersonaTitle:    payload.PersonaTitle,
		DestinationName: payload.DestinationName,
		Analysis:        payload.Analysis,
		Recommendations: payload.Recommendations,
		Budget:          payload.Budget,
		Transport:       payload.Transport,
		Tip:             payload.Tip,
		Popularity:      payload.Popularity,
		ImageURL:        imageURL,
	}, nil
}
