package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validPayloadJSON() string {
	return `{
		"personaTitle": "감성 힐링가",
		"destinationName": "전라남도 담양",
		"analysis": "담양은 대나무 숲과 호수가 어우러진 조용한 지역입니다.",
		"recommendations": [
			{"type": "숙소", "name": "죽녹원 한옥스테이", "description": "대숲 옆 한옥", "address": "전남 담양군 담양읍", "preferenceScore": 0.92},
			{"type": "맛집", "name": "담양국수거리", "description": "", "address": "전남 담양군"},
			{"type": "명소", "name": "메타세쿼이아길", "description": "가로수길 산책", "address": "전남 담양군"}
		],
		"budget": "숙박: 120,000원\n식비: 40,000원\n총 1박 기준: 160,000원",
		"transport": "비행: 해당 없음\n시내: 시외버스 이용",
		"tip": "대숲은 아침이 한적합니다.",
		"imagePrompt": "A photorealistic bamboo forest in Damyang at dawn",
		"popularity": "Tripadvisor 4.7/5"
	}`
}

func TestParseRecommendationPayload_Valid(t *testing.T) {
	payload, err := ParseRecommendationPayload(validPayloadJSON())
	require.NoError(t, err)
	require.Equal(t, "전라남도 담양", payload.DestinationName)
	require.Equal(t, "감성 힐링가", payload.PersonaTitle)
	require.Len(t, payload.Recommendations, 3)

	// blank description is normalized
	require.Equal(t, DefaultDescription, payload.Recommendations[1].Description)
	require.NotNil(t, payload.Recommendations[0].PreferenceScore)
	require.InDelta(t, 0.92, *payload.Recommendations[0].PreferenceScore, 1e-9)
}

func TestParseRecommendationPayload_EmptyResponse(t *testing.T) {
	_, err := ParseRecommendationPayload("")
	require.ErrorIs(t, err, ErrGenerationFailed)
}

func TestParseRecommendationPayload_MalformedJSON(t *testing.T) {
	_, err := ParseRecommendationPayload("{not valid json")
	require.ErrorIs(t, err, ErrSchemaViolation)
}

func TestParseRecommendationPayload_MissingDestination(t *testing.T) {
	raw := `{"personaTitle": "감성 힐링가", "imagePrompt": "x", "recommendations": []}`
	_, err := ParseRecommendationPayload(raw)
	require.ErrorIs(t, err, ErrSchemaViolation)
}

func TestParseRecommendationPayload_WrongRecommendationCount(t *testing.T) {
	raw := `{
		"personaTitle": "감성 힐링가",
		"destinationName": "전라남도 담양",
		"imagePrompt": "x",
		"recommendations": [
			{"type": "숙소", "name": "a"},
			{"type": "맛집", "name": "b"}
		]
	}`
	_, err := ParseRecommendationPayload(raw)
	require.ErrorIs(t, err, ErrSchemaViolation)
}

func TestParseRecommendationPayload_DuplicateCategory(t *testing.T) {
	raw := `{
		"personaTitle": "감성 힐링가",
		"destinationName": "전라남도 담양",
		"imagePrompt": "x",
		"recommendations": [
			{"type": "숙소", "name": "a"},
			{"type": "숙소", "name": "b"},
			{"type": "명소", "name": "c"}
		]
	}`
	_, err := ParseRecommendationPayload(raw)
	require.ErrorIs(t, err, ErrSchemaViolation)
	require.False(t, errors.Is(err, ErrGenerationFailed))
}

func TestCleanJSONResponse_StripsFences(t *testing.T) {
	wrapped := "```json\n" + validPayloadJSON() + "\n```"
	cleaned := CleanJSONResponse(wrapped)

	payload, err := ParseRecommendationPayload(cleaned)
	require.NoError(t, err)
	require.Equal(t, "전라남도 담양", payload.DestinationName)
}

func TestBuildRecommendationPrompt_IncludesInputs(t *testing.T) {
	prompt := BuildRecommendationPrompt(PromptInput{
		Physical:     72,
		Emotional:    45,
		Intellectual: 88,
		Perceptual:   51,
		QuizAnswers:  []string{"완전한 휴식과 스트레스 해소", "파도 소리가 들리는 해변"},
		Location:     "부산 - 해운대구",
	})

	require.Contains(t, prompt, "72")
	require.Contains(t, prompt, "파도 소리가 들리는 해변")
	require.Contains(t, prompt, "부산 - 해운대구")
	require.Contains(t, prompt, "destinationName")
}

func TestSplitLines_BudgetContract(t *testing.T) {
	budget := "숙박: 120,000원\r\n식비: 40,000원\n\n액티비티: 30,000원\n총 1박 기준: 190,000원"
	lines := SplitLines(budget)

	require.Len(t, lines, 4)
	require.Equal(t, "총 1박 기준: 190,000원", lines[len(lines)-1])
}
