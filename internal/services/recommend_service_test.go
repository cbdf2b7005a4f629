package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/models/response_models"
	"wanderpersona/pkg/utils"
)

type fakeSettingsService struct {
	settings *AdminSettings
	err      error
}

func (f *fakeSettingsService) Get(context.Context) (*AdminSettings, error) {
	return f.settings, f.err
}

func (f *fakeSettingsService) Invalidate() {}

type fakeTextClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeTextClient) GenerateJSON(_ context.Context, _, _, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeTextClient) GenerateText(_ context.Context, _, _, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

type fakeImageClient struct {
	media   *utils.GeneratedMedia
	err     error
	prompts []string
}

func (f *fakeImageClient) GenerateImage(_ context.Context, _, _, prompt string) (*utils.GeneratedMedia, error) {
	f.prompts = append(f.prompts, prompt)
	return f.media, f.err
}

func testSettings() *fakeSettingsService {
	return &fakeSettingsService{settings: &AdminSettings{
		TextModel:     "gemini-2.0-flash",
		TextModelKey:  "text-key",
		ImageModel:    "gemini-image",
		ImageModelKey: "image-key",
	}}
}

const validResultJSON = `{
	"personaTitle": "감성 힐링가",
	"destinationName": "전라남도 담양",
	"analysis": "담양은 대나무 숲이 아름다운 지역입니다.",
	"recommendations": [
		{"type": "숙소", "name": "죽녹원 한옥스테이"},
		{"type": "맛집", "name": "담양국수거리"},
		{"type": "명소", "name": "메타세쿼이아길"}
	],
	"budget": "숙박: 120,000원\n총 1박 기준: 120,000원",
	"transport": "비행: 해당 없음\n시내: 시외버스",
	"tip": "아침 산책을 추천합니다.",
	"imagePrompt": "A photorealistic bamboo forest",
	"popularity": "Tripadvisor 4.7/5"
}`

func validRecommendRequest() request_models.RecommendRequest {
	return request_models.RecommendRequest{
		Email:       "a@b.com",
		BirthDate:   "1990-03-15",
		QuizAnswers: []string{"완전한 휴식과 스트레스 해소", "파도 소리가 들리는 해변"},
		Location:    "부산 - 해운대구",
	}
}

func TestRecommend_Success(t *testing.T) {
	text := &fakeTextClient{response: validResultJSON}
	image := &fakeImageClient{media: &utils.GeneratedMedia{URL: "https://cdn.example.com/img.png"}}
	svc := NewRecommendService(testSettings(), NewBiorhythmService(), text, image)

	result, err := svc.Recommend(context.Background(), validRecommendRequest())
	require.NoError(t, err)
	require.Equal(t, "전라남도 담양", result.DestinationName)
	require.Equal(t, "감성 힐링가", result.PersonaTitle)
	require.Len(t, result.Recommendations, 3)
	require.Equal(t, "https://cdn.example.com/img.png", result.ImageURL)

	require.Len(t, image.prompts, 1)
	require.Equal(t, "A photorealistic bamboo forest", image.prompts[0])
	require.Len(t, text.prompts, 1)
	require.Contains(t, text.prompts[0], "부산 - 해운대구")
}

type fixedBiorhythmService struct {
	BiorhythmServiceInterface
	values response_models.BiorhythmResponse
}

func (f *fixedBiorhythmService) Compute(_, _ time.Time) response_models.BiorhythmResponse {
	return f.values
}

func TestRecommend_PromptCarriesRawScores(t *testing.T) {
	text := &fakeTextClient{response: validResultJSON}
	rhythm := &fixedBiorhythmService{
		BiorhythmServiceInterface: NewBiorhythmService(),
		values:                    responseWith(-1, 0.5234, 0, 1),
	}
	svc := NewRecommendService(testSettings(), rhythm, text, &fakeImageClient{media: &utils.GeneratedMedia{URL: "u"}})

	_, err := svc.Recommend(context.Background(), validRecommendRequest())
	require.NoError(t, err)

	require.Len(t, text.prompts, 1)
	require.Contains(t, text.prompts[0], "- Physical: -1.0000")
	require.Contains(t, text.prompts[0], "- Emotional: 0.5234")
	require.Contains(t, text.prompts[0], "- Intellectual: 0.0000")
	require.Contains(t, text.prompts[0], "- Perceptual: 1.0000")
}

func TestRecommend_ImageFailureFallsBackToPlaceholder(t *testing.T) {
	text := &fakeTextClient{response: validResultJSON}
	image := &fakeImageClient{err: errors.New("quota exceeded")}
	svc := NewRecommendService(testSettings(), NewBiorhythmService(), text, image)

	result, err := svc.Recommend(context.Background(), validRecommendRequest())
	require.NoError(t, err)
	require.Equal(t, PlaceholderImageURL, result.ImageURL)
	require.Equal(t, "전라남도 담양", result.DestinationName)
}

func TestRecommend_TextFailureIsFatal(t *testing.T) {
	text := &fakeTextClient{err: errors.New("model unavailable")}
	image := &fakeImageClient{}
	svc := NewRecommendService(testSettings(), NewBiorhythmService(), text, image)

	_, err := svc.Recommend(context.Background(), validRecommendRequest())
	require.ErrorIs(t, err, utils.ErrGenerationFailed)
	require.Empty(t, image.prompts)
}

func TestRecommend_SchemaViolationIsFatal(t *testing.T) {
	text := &fakeTextClient{response: `{"personaTitle": "감성 힐링가", "destinationName": "전라남도 담양", "imagePrompt": "x", "recommendations": [{"type": "숙소", "name": "a"}]}`}
	image := &fakeImageClient{}
	svc := NewRecommendService(testSettings(), NewBiorhythmService(), text, image)

	_, err := svc.Recommend(context.Background(), validRecommendRequest())
	require.ErrorIs(t, err, utils.ErrSchemaViolation)
	require.Empty(t, image.prompts)
}

func TestRecommend_FencedResponseIsAccepted(t *testing.T) {
	text := &fakeTextClient{response: "```json\n" + validResultJSON + "\n```"}
	image := &fakeImageClient{media: &utils.GeneratedMedia{URL: "u"}}
	svc := NewRecommendService(testSettings(), NewBiorhythmService(), text, image)

	result, err := svc.Recommend(context.Background(), validRecommendRequest())
	require.NoError(t, err)
	require.Equal(t, "전라남도 담양", result.DestinationName)
}

func TestRecommend_SettingsUnavailable(t *testing.T) {
	settings := &fakeSettingsService{err: utils.ErrSettingsUnavailable}
	svc := NewRecommendService(settings, NewBiorhythmService(), &fakeTextClient{}, &fakeImageClient{})

	_, err := svc.Recommend(context.Background(), validRecommendRequest())
	require.ErrorIs(t, err, utils.ErrSettingsUnavailable)
}

func TestRecommend_InvalidInput(t *testing.T) {
	svc := NewRecommendService(testSettings(), NewBiorhythmService(), &fakeTextClient{response: validResultJSON}, &fakeImageClient{})

	req := validRecommendRequest()
	req.BirthDate = "15-03-1990"
	_, err := svc.Recommend(context.Background(), req)
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	req = validRecommendRequest()
	req.QuizAnswers = nil
	_, err = svc.Recommend(context.Background(), req)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}
