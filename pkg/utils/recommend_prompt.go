package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Recommendation entry categories the model must return, exactly one of each.
const (
	CategoryLodging    = "숙소"
	CategoryFood       = "맛집"
	CategoryAttraction = "명소"
)

const DefaultDescription = "설명 없음"
const DefaultBudget = "정보 없음"

// PromptInput carries everything interpolated into the recommendation prompt.
// Destination choice is driven by the quiz answers; the biorhythm values are
// supplied as context only.
type PromptInput struct {
	Physical     float64
	Emotional    float64
	Intellectual float64
	Perceptual   float64
	QuizAnswers  []string
	Popularity   string
	Location     string
}

// RecommendationEntry is one of the three recommended places.
type RecommendationEntry struct {
	Type            string   `json:"type"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Address         string   `json:"address"`
	PreferenceScore *float64 `json:"preferenceScore,omitempty"`
}

// RecommendationPayload is the structured output contract enforced on the
// text-generation model.
type RecommendationPayload struct {
	PersonaTitle    string                `json:"personaTitle"`
	DestinationName string                `json:"destinationName"`
	Analysis        string                `json:"analysis"`
	Recommendations []RecommendationEntry `json:"recommendations"`
	Budget          string                `json:"budget"`
	Transport       string                `json:"transport"`
	Tip             string                `json:"tip"`
	ImagePrompt     string                `json:"imagePrompt"`
	Popularity      string                `json:"popularity"`
}

// BuildRecommendationPrompt renders the full Korean instruction block. The
// directives mirror the product rules: domestic destinations only, the seven
// largest metro cities excluded as bare picks, destination names prefixed with
// their province, quiz answers (not biorhythm magnitude) deciding the
// destination, and an English photorealistic image prompt with negative
// constraints.
func BuildRecommendationPrompt(in PromptInput) string {
	var b strings.Builder

	b.WriteString("[퀴즈 문항 예시]\n")
	b.WriteString("- \"여행에서 가장 중요하게 생각하는 가치는?\" → \"완전한 휴식과 스트레스 해소\"\n")
	b.WriteString("- \"이상적인 여행 기간은?\" → \"일주일 정도의 여유로운 여행\"\n")
	b.WriteString("- \"가장 마음이 편안해지는 자연환경은?\" → \"파도 소리가 들리는 해변\"\n\n")

	b.WriteString("[지침]\n")
	b.WriteString("- 반드시 대한민국 국내(한국) 여행지(도시, 지역, 명소)만 추천할 것. 해외 여행지는 절대 추천하지 말 것.\n")
	b.WriteString("- 서울, 부산, 인천, 대구, 대전, 광주, 울산 등 대도시는 추천 대상에서 제외할 것.\n")
	b.WriteString("- destinationName은 반드시 시/군/구 앞에 해당 도/광역시/특별시를 붙여서 '전라남도 담양', '경상북도 경주'처럼 지역+도시 형태로 출력할 것.\n")
	b.WriteString("- 퀴즈 답변의 조합에 따라 여행지 추천 결과가 다양하게 나오도록 할 것.\n")
	b.WriteString("- 추천지는 반드시 실제 존재하는 도시/지역명으로, 답변과 논리적으로 연결될 것.\n\n")

	b.WriteString("The following are the user's biorhythm values, travel tendencies (quiz answers), and the popularity of the recommended destination among all users. Based on this information, generate a recommended destination and the reason for the recommendation.\n\n")

	b.WriteString("[Input]\n")
	fmt.Fprintf(&b, "- Physical: %.4f\n", in.Physical)
	fmt.Fprintf(&b, "- Emotional: %.4f\n", in.Emotional)
	fmt.Fprintf(&b, "- Intellectual: %.4f\n", in.Intellectual)
	fmt.Fprintf(&b, "- Perceptual: %.4f\n", in.Perceptual)
	fmt.Fprintf(&b, "- Quiz Answers: %s\n", strings.Join(in.QuizAnswers, " / "))
	fmt.Fprintf(&b, "- Popularity: %s\n", in.Popularity)
	fmt.Fprintf(&b, "- UserLocation: %s\n", in.Location)
	b.WriteString("  (UserLocation은 사용자의 실제 출발 위치 정보입니다. 반드시 교통편 생성 시 출발지로 활용할 것)\n\n")

	b.WriteString("[Output]\n")
	b.WriteString("1. personaTitle: 반드시 한글 2단어 조합(예: \"감성 힐링가\", \"모험 탐험가\"), 10자 이내, 이모지 금지.\n")
	b.WriteString("2. destinationName: 반드시 퀴즈 답변만을 근거로 사용자의 여행 성향에 가장 적합한 실제 존재하는 국내 여행지를 한글로 추천할 것. 바이오리듬 수치는 참고하지 말 것. 영어, 번역, 괄호, 설명문, 이모지는 절대 포함하지 말 것.\n")
	b.WriteString("3. analysis: 추천 지역의 상세설명(특징, 분위기, 매력)만 5~6문장으로 작성할 것. 바이오리듬, 퀴즈 답변, 수치, 영어, 기호는 포함하지 말 것.\n")
	b.WriteString("4. recommendations: destinationName 내에 실제로 존재하는 숙소 1곳, 맛집 1곳, 명소 1곳만, 총 3개. type은 '숙소'/'맛집'/'명소' 중 하나, name은 공식 한글 명칭, description은 한글 30자 이내, address는 실제 주소 50자 이내, preferenceScore는 0~1 사이 float.\n")
	b.WriteString("5. budget: destinationName 기준의 실제 물가를 반영해 항목(숙박, 식비, 액티비티, 교통비, 기타)별로 한 줄씩 줄바꿈해 작성할 것. 모든 금액은 '원' 단위로만 표기하고 항목별 금액은 현실적인 범위(숙박 80,000~300,000원, 식비 20,000~100,000원, 액티비티 10,000~100,000원 등)에서 서로 충분한 차이를 두어 생성할 것. 마지막 줄에 '총 1박 기준: 총액(원)' 형태로 합산 금액을 표기할 것.\n")
	b.WriteString("6. transport: 반드시 UserLocation에서 destinationName까지의 실제 이동 경로, 교통수단, 소요시간, 가격을 안내할 것. 임의의 출발지(서울, 김포 등)는 절대 사용하지 말 것. '비행', '시내' 각각 한 줄씩 줄바꿈해서 한국어로 작성.\n")
	b.WriteString("7. tip: destinationName에서 실제로 유용한 여행 팁만 3~4가지, 각 팁은 20~50자의 구체적 문장으로 줄바꿈해 안내.\n")
	b.WriteString("8. imagePrompt: In English. A highly artistic, emotional, visually stunning photo of the recommended destination, as if taken by a professional local photographer. High-resolution, realistic, cinematic travel magazine style. A real, recognizable landmark of the destination must be clearly visible. No people, no text, no watermark, no logo, no cartoon, no illustration, no drawing, no painting, no animation, no emoji.\n")
	b.WriteString("9. popularity: Tripadvisor, Expedia, Booking.com 등 주요 여행 플랫폼의 실제 평점, 리뷰 수, 방문자 수 데이터를 조합해 현실적으로 작성할 것. 임의의 수치나 AI 안내문은 넣지 말 것.\n\n")

	b.WriteString("Return JSON only with keys personaTitle, destinationName, analysis, recommendations, budget, transport, tip, imagePrompt, popularity. No markdown, no extra text.")

	return b.String()
}

// CleanJSONResponse strips markdown fences and any stray prose around the JSON
// object a model returns.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	if !strings.HasPrefix(response, "{") {
		if start := strings.Index(response, "{"); start >= 0 {
			if end := strings.LastIndex(response, "}"); end > start {
				response = response[start : end+1]
			}
		}
	}
	return response
}

// ParseRecommendationPayload decodes and validates the model output. A decode
// failure, a missing required field, or a recommendations list that is not
// exactly one lodging + one food venue + one attraction is a schema violation,
// which callers treat the same as a failed generation.
func ParseRecommendationPayload(raw string) (*RecommendationPayload, error) {
	cleaned := CleanJSONResponse(raw)
	if strings.TrimSpace(cleaned) == "" {
		return nil, fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	var payload RecommendationPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	if strings.TrimSpace(payload.DestinationName) == "" {
		return nil, fmt.Errorf("%w: missing destinationName", ErrSchemaViolation)
	}
	if strings.TrimSpace(payload.PersonaTitle) == "" {
		return nil, fmt.Errorf("%w: missing personaTitle", ErrSchemaViolation)
	}
	if strings.TrimSpace(payload.ImagePrompt) == "" {
		return nil, fmt.Errorf("%w: missing imagePrompt", ErrSchemaViolation)
	}
	if err := validateRecommendations(payload.Recommendations); err != nil {
		return nil, err
	}

	// Post-processing normalization, not a retry: blank optional text fields
	// get fixed placeholders.
	for i := range payload.Recommendations {
		if strings.TrimSpace(payload.Recommendations[i].Description) == "" {
			payload.Recommendations[i].Description = DefaultDescription
		}
	}
	if strings.TrimSpace(payload.Budget) == "" {
		payload.Budget = DefaultBudget
	}

	return &payload, nil
}

func validateRecommendations(entries []RecommendationEntry) error {
	if len(entries) != 3 {
		return fmt.Errorf("%w: expected 3 recommendations, got %d", ErrSchemaViolation, len(entries))
	}
	seen := map[string]bool{}
	for _, e := range entries {
		switch e.Type {
		case CategoryLodging, CategoryFood, CategoryAttraction:
			if seen[e.Type] {
				return fmt.Errorf("%w: duplicate recommendation category %q", ErrSchemaViolation, e.Type)
			}
			seen[e.Type] = true
		default:
			return fmt.Errorf("%w: unknown recommendation category %q", ErrSchemaViolation, e.Type)
		}
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("%w: recommendation %q has no name", ErrSchemaViolation, e.Type)
		}
	}
	return nil
}
