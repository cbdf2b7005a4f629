package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"wanderpersona/internal/infra"
	"wanderpersona/internal/models/db_models"
	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/models/response_models"
	"wanderpersona/internal/repositories"
	"wanderpersona/pkg/utils"
)

type SessionServiceInterface interface {
	SaveSession(ctx context.Context, request request_models.SaveSessionRequest, ip string) (*response_models.SessionResponse, error)
	GetByID(ctx context.Context, id, viewerIdentity string) (*response_models.SessionResponse, error)
	Similar(ctx context.Context, id string, limit int) ([]response_models.SimilarSessionEntry, error)
}

type SessionService struct {
	sessionRepo   repositories.SessionRepository
	embeddingRepo repositories.SessionEmbeddingRepository
	embedder      utils.EmbeddingClientInterface
	geo           GeoServiceInterface
	biorhythm     BiorhythmServiceInterface
	storage       infra.ObjectStorage
	http          *http.Client
}

func NewSessionService(
	sessionRepo repositories.SessionRepository,
	embeddingRepo repositories.SessionEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	geo GeoServiceInterface,
	biorhythm BiorhythmServiceInterface,
	storage infra.ObjectStorage,
) SessionServiceInterface {
	return &SessionService{
		sessionRepo:   sessionRepo,
		embeddingRepo: embeddingRepo,
		embedder:      embedder,
		geo:           geo,
		biorhythm:     biorhythm,
		storage:       storage,
		http:          &http.Client{Timeout: 30 * time.Second},
	}
}

var dataImagePattern = regexp.MustCompile(`^data:image/[^;]+;base64,`)

// SaveSession persists a finished quiz run. A client-supplied location wins;
// otherwise the caller IP is resolved to one. External or inline images are
// re-hosted in object storage and the destination name is lifted out of the
// result for indexing.
func (s *SessionService) SaveSession(ctx context.Context, request request_models.SaveSessionRequest, ip string) (*response_models.SessionResponse, error) {
	birthDate, err := time.Parse("2006-01-02", request.BirthDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	location := request.Location
	if location == "" {
		location = s.geo.DetectCity(ctx, ip)
	}

	rhythm := s.biorhythm.Compute(birthDate, utils.NowKST())

	imageURL := s.rehostImage(ctx, request.ImageURL)

	destination := "unknown"
	var parsed struct {
		DestinationName string `json:"destinationName"`
	}
	if err := json.Unmarshal([]byte(request.Result), &parsed); err == nil && parsed.DestinationName != "" {
		destination = parsed.DestinationName
	}

	session := &db_models.ResultSession{
		Email:                  request.Email,
		BirthDate:              request.BirthDate,
		Location:               location,
		IPAddress:              ip,
		QuizAnswers:            request.QuizAnswers,
		Physical:               rhythm.Physical,
		Emotional:              rhythm.Emotional,
		Intellectual:           rhythm.Intellectual,
		Perceptual:             rhythm.Perceptual,
		RecommendedDestination: destination,
		AIResult:               db_models.JSONBlob(request.Result),
		ImageURL:               imageURL,
		LikedBy:                db_models.LikeMarks{},
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.storeEmbedding(ctx, session)

	return toSessionResponse(session, ""), nil
}

func (s *SessionService) GetByID(ctx context.Context, id, viewerIdentity string) (*response_models.SessionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidInput
	}
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session, viewerIdentity), nil
}

func (s *SessionService) Similar(ctx context.Context, id string, limit int) ([]response_models.SimilarSessionEntry, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vector, err := s.embedder.GetEmbedding(ctx, embeddingText(session))
	if err != nil {
		return nil, utils.ErrGenerationFailed
	}

	nearby, err := s.embeddingRepo.FindNearest(ctx, vector, id, limit)
	if err != nil {
		return nil, err
	}

	results := make([]response_models.SimilarSessionEntry, 0, len(nearby))
	for _, n := range nearby {
		results = append(results, response_models.SimilarSessionEntry{
			SessionID:       n.SessionID,
			DestinationName: n.Destination,
			Distance:        n.Distance,
		})
	}
	return results, nil
}

// rehostImage copies a remote URL or inline base64 image into object storage
// under ai/<uuid>.png. On any failure the original value is kept.
func (s *SessionService) rehostImage(ctx context.Context, imageURL string) string {
	if imageURL == "" {
		return imageURL
	}

	var data []byte
	switch {
	case strings.HasPrefix(imageURL, "http://"), strings.HasPrefix(imageURL, "https://"):
		downloaded, err := s.downloadImage(ctx, imageURL)
		if err != nil {
			log.Printf("Image download failed, keeping original URL: %v", err)
			return imageURL
		}
		data = downloaded
	case dataImagePattern.MatchString(imageURL):
		idx := strings.Index(imageURL, ",")
		decoded, err := base64.StdEncoding.DecodeString(imageURL[idx+1:])
		if err != nil {
			log.Printf("Inline image decode failed, keeping original value: %v", err)
			return imageURL
		}
		data = decoded
	default:
		return imageURL
	}

	key := fmt.Sprintf("ai/%s.png", uuid.New().String())
	publicURL, err := s.storage.Upload(ctx, key, data, "image/png")
	if err != nil {
		log.Printf("Image upload failed, keeping original value: %v", err)
		return imageURL
	}
	return publicURL
}

func (s *SessionService) downloadImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (s *SessionService) storeEmbedding(ctx context.Context, session *db_models.ResultSession) {
	vector, err := s.embedder.GetEmbedding(ctx, embeddingText(session))
	if err != nil {
		log.Printf("Session embedding failed: %v", err)
		return
	}
	err = s.embeddingRepo.Create(ctx, &db_models.SessionEmbedding{
		SessionID:   session.ID.String(),
		Destination: session.RecommendedDestination,
		Embedding:   vector,
	})
	if err != nil {
		log.Printf("Session embedding save failed: %v", err)
	}
}

func embeddingText(session *db_models.ResultSession) string {
	return session.RecommendedDestination + " " + strings.Join(session.QuizAnswers, " ")
}

func toSessionResponse(session *db_models.ResultSession, viewerIdentity string) *response_models.SessionResponse {
	liked := false
	if viewerIdentity != "" {
		today := utils.TodayKST()
		for _, mark := range session.LikedBy {
			if mark.Identity == viewerIdentity && mark.Date == today {
				liked = true
				break
			}
		}
	}

	var result any
	if len(session.AIResult) > 0 {
		if err := json.Unmarshal(session.AIResult, &result); err != nil {
			result = string(session.AIResult)
		}
	}

	return &response_models.SessionResponse{
		ID:                     session.ID.String(),
		Email:                  session.Email,
		BirthDate:              session.BirthDate,
		Location:               session.Location,
		QuizAnswers:            session.QuizAnswers,
		RecommendedDestination: session.RecommendedDestination,
		Result:                 result,
		ImageURL:               session.ImageURL,
		Likes:                  session.Likes,
		Liked:                  liked,
		CreatedAt:              session.CreatedAt,
	}
}
