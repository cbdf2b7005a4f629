package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"wanderpersona/internal/models/response_models"
	"wanderpersona/pkg/utils"
)

// Fallback copy served when the model is unreachable. The interpret endpoint
// never fails outward.
const (
	fallbackInterpretation      = "오늘은 신체리듬이 낮으니 휴식을 추천합니다. 내일은 더 활기찬 여행을 기대해보세요."
	fallbackShortInterpretation = "휴식이 필요해요"
)

type InterpretServiceInterface interface {
	Interpret(ctx context.Context, birthDate time.Time) response_models.InterpretResponse
}

type InterpretService struct {
	settings   SettingsServiceInterface
	biorhythm  BiorhythmServiceInterface
	textClient utils.TextGenerationClient
}

func NewInterpretService(
	settings SettingsServiceInterface,
	biorhythm BiorhythmServiceInterface,
	textClient utils.TextGenerationClient,
) InterpretServiceInterface {
	return &InterpretService{
		settings:   settings,
		biorhythm:  biorhythm,
		textClient: textClient,
	}
}

// Interpret produces a short Korean reading of today's rhythm: a 2-3 sentence
// interpretation and a headline under 20 characters. Both calls must succeed
// or the fallback pair is returned.
func (s *InterpretService) Interpret(ctx context.Context, birthDate time.Time) response_models.InterpretResponse {
	fallback := response_models.InterpretResponse{
		Interpretation:      fallbackInterpretation,
		ShortInterpretation: fallbackShortInterpretation,
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return fallback
	}

	rhythm := s.biorhythm.Compute(birthDate, utils.NowKST())
	physical, emotional, intellectual, _ := s.biorhythm.Percentages(rhythm)

	prompt := fmt.Sprintf(
		"아래 바이오리듬 수치를 참고해서 오늘의 여행 컨디션을 한글로 2~3문장으로 해석해줘.\n\n신체: %.0f, 감정: %.0f, 지성: %.0f",
		physical, emotional, intellectual)
	shortPrompt := fmt.Sprintf(
		"아래 바이오리듬 수치를 참고해서 오늘의 여행 컨디션을 한글로 20자 이내로 아주 짧게 요약해줘.\n\n신체: %.0f, 감정: %.0f, 지성: %.0f",
		physical, emotional, intellectual)

	interpretation, err := s.textClient.GenerateText(ctx, settings.TextModel, settings.TextModelKey, prompt)
	if err != nil {
		log.Printf("Interpretation generation failed: %v", err)
		return fallback
	}

	short, err := s.textClient.GenerateText(ctx, settings.TextModel, settings.TextModelKey, shortPrompt)
	if err != nil {
		log.Printf("Short interpretation generation failed: %v", err)
		return fallback
	}

	interpretation = strings.TrimSpace(interpretation)
	short = strings.TrimSpace(short)
	if interpretation == "" || short == "" {
		return fallback
	}

	return response_models.InterpretResponse{
		Interpretation:      interpretation,
		ShortInterpretation: short,
	}
}
