package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// GeoServiceInterface resolves the caller IP to a display location. Failures
// degrade to "local" so recommendation saves never block on the lookup.
type GeoServiceInterface interface {
	DetectCity(ctx context.Context, ip string) string
}

type GeoService struct {
	baseURL string
	http    *http.Client
}

func NewGeoService(baseURL string) GeoServiceInterface {
	if baseURL == "" {
		baseURL = "https://ipapi.co"
	}
	return &GeoService{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

var koreanRegions = map[string]string{
	"Seoul":             "서울",
	"Busan":             "부산",
	"Daegu":             "대구",
	"Incheon":           "인천",
	"Gwangju":           "광주",
	"Daejeon":           "대전",
	"Ulsan":             "울산",
	"Gyeonggi-do":       "경기도",
	"Gangwon-do":        "강원도",
	"Chungcheongbuk-do": "충청북도",
	"Chungcheongnam-do": "충청남도",
	"Jeollabuk-do":      "전라북도",
	"Jeollanam-do":      "전라남도",
	"Gyeongsangbuk-do":  "경상북도",
	"Gyeongsangnam-do":  "경상남도",
	"Jeju-do":           "제주도",
}

var koreanCityBases = map[string]string{
	"Suyeong":   "수영",
	"Haeundae":  "해운대",
	"Dongnae":   "동래",
	"Jung":      "중",
	"Seo":       "서",
	"Yeonje":    "연제",
	"Nam":       "남",
	"Buk":       "북",
	"Saha":      "사하",
	"Sasang":    "사상",
	"Geumjeong": "금정",
	"Busanjin":  "부산진",
}

func (g *GeoService) DetectCity(ctx context.Context, ip string) string {
	if ip == "" || ip == "unknown" || ip == "::1" || ip == "127.0.0.1" {
		return "local"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json/", g.baseURL, ip), nil)
	if err != nil {
		return "local"
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return "local"
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "local"
	}

	var body struct {
		Region string `json:"region"`
		City   string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "local"
	}

	region, city := body.Region, body.City
	if korean, ok := koreanRegions[region]; ok {
		region = korean
		city = localizeKoreanCity(city)
	}

	switch {
	case region != "" && city != "":
		return region + " - " + city
	case region != "":
		return region
	case city != "":
		return city
	default:
		return "local"
	}
}

// localizeKoreanCity rewrites romanized "-gu"/"-si"/"-gun" suffixed names
// into Korean where the base district is known.
func localizeKoreanCity(city string) string {
	for suffix, korean := range map[string]string{"-gu": "구", "-si": "시", "-gun": "군"} {
		if strings.HasSuffix(city, suffix) {
			base := strings.TrimSuffix(city, suffix)
			if translated, ok := koreanCityBases[base]; ok {
				base = translated
			}
			return base + korean
		}
	}
	return city
}
