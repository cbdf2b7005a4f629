package services

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/require"

	"wanderpersona/internal/models/db_models"
	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/repositories"
	"wanderpersona/pkg/utils"
)

type fakeEmbeddingRepo struct {
	created []*db_models.SessionEmbedding
	nearest []repositories.NearbySession
}

func (f *fakeEmbeddingRepo) Create(_ context.Context, embedding *db_models.SessionEmbedding) error {
	f.created = append(f.created, embedding)
	return nil
}

func (f *fakeEmbeddingRepo) FindNearest(_ context.Context, _ pgvector.Vector, _ string, _ int) ([]repositories.NearbySession, error) {
	return f.nearest, nil
}

type fakeStorage struct {
	keys []string
	fail bool
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if f.fail {
		return "", utils.ErrStorageError
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example.com/" + key, nil
}

type fakeGeo struct {
	location string
	calls    int
}

func (f *fakeGeo) DetectCity(context.Context, string) string {
	f.calls++
	return f.location
}

func newTestSessionService(sessionRepo repositories.SessionRepository, embeddingRepo *fakeEmbeddingRepo, storage *fakeStorage) SessionServiceInterface {
	return NewSessionService(
		sessionRepo,
		embeddingRepo,
		utils.NewHashEmbeddingClient(),
		&fakeGeo{location: "부산 - 해운대구"},
		NewBiorhythmService(),
		storage,
	)
}

func saveRequest(result, imageURL string) request_models.SaveSessionRequest {
	return request_models.SaveSessionRequest{
		Email:       "a@b.com",
		BirthDate:   "1990-03-15",
		QuizAnswers: []string{"완전한 휴식과 스트레스 해소"},
		Result:      result,
		ImageURL:    imageURL,
	}
}

func TestSaveSession_ExtractsDestinationAndLocation(t *testing.T) {
	repo := newFakeSessionRepo()
	embeddings := &fakeEmbeddingRepo{}
	svc := newTestSessionService(repo, embeddings, &fakeStorage{})

	saved, err := svc.SaveSession(context.Background(), saveRequest(`{"destinationName": "전라남도 담양"}`, ""), "203.0.113.9")
	require.NoError(t, err)
	require.Equal(t, "전라남도 담양", saved.RecommendedDestination)
	require.Equal(t, "부산 - 해운대구", saved.Location)
	require.Equal(t, 0, saved.Likes)

	require.Len(t, embeddings.created, 1)
	require.Equal(t, "전라남도 담양", embeddings.created[0].Destination)
}

func TestSaveSession_ClientLocationWins(t *testing.T) {
	repo := newFakeSessionRepo()
	geo := &fakeGeo{location: "부산 - 해운대구"}
	svc := NewSessionService(
		repo,
		&fakeEmbeddingRepo{},
		utils.NewHashEmbeddingClient(),
		geo,
		NewBiorhythmService(),
		&fakeStorage{},
	)

	req := saveRequest(`{"destinationName": "전라남도 담양"}`, "")
	req.Location = "강원도 - 춘천시"
	saved, err := svc.SaveSession(context.Background(), req, "203.0.113.9")
	require.NoError(t, err)
	require.Equal(t, "강원도 - 춘천시", saved.Location)
	require.Equal(t, 0, geo.calls)
}

func TestSaveSession_UnparseableResultIsUnknown(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestSessionService(repo, &fakeEmbeddingRepo{}, &fakeStorage{})

	saved, err := svc.SaveSession(context.Background(), saveRequest(`not json at all`, ""), "203.0.113.9")
	require.NoError(t, err)
	require.Equal(t, "unknown", saved.RecommendedDestination)
}

func TestSaveSession_RehostsInlineImage(t *testing.T) {
	repo := newFakeSessionRepo()
	storage := &fakeStorage{}
	svc := newTestSessionService(repo, &fakeEmbeddingRepo{}, storage)

	inline := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	saved, err := svc.SaveSession(context.Background(), saveRequest(`{"destinationName": "x"}`, inline), "203.0.113.9")
	require.NoError(t, err)

	require.Len(t, storage.keys, 1)
	require.Regexp(t, `^ai/.+\.png$`, storage.keys[0])
	require.Equal(t, "https://cdn.example.com/"+storage.keys[0], saved.ImageURL)
}

func TestSaveSession_UploadFailureKeepsOriginal(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := newTestSessionService(repo, &fakeEmbeddingRepo{}, &fakeStorage{fail: true})

	inline := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	saved, err := svc.SaveSession(context.Background(), saveRequest(`{"destinationName": "x"}`, inline), "203.0.113.9")
	require.NoError(t, err)
	require.Equal(t, inline, saved.ImageURL)
}

func TestSaveSession_InvalidBirthDate(t *testing.T) {
	svc := newTestSessionService(newFakeSessionRepo(), &fakeEmbeddingRepo{}, &fakeStorage{})

	req := saveRequest(`{}`, "")
	req.BirthDate = "03/15/1990"
	_, err := svc.SaveSession(context.Background(), req, "203.0.113.9")
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetByID_LikedForViewer(t *testing.T) {
	repo := newFakeSessionRepo()
	session := repo.add(&db_models.ResultSession{
		RecommendedDestination: "전라남도 담양",
		Likes:                  1,
		LikedBy:                db_models.LikeMarks{{Identity: "1.2.3.4", Date: utils.TodayKST()}},
	})
	svc := newTestSessionService(repo, &fakeEmbeddingRepo{}, &fakeStorage{})

	viewed, err := svc.GetByID(context.Background(), session.ID.String(), "1.2.3.4")
	require.NoError(t, err)
	require.True(t, viewed.Liked)

	other, err := svc.GetByID(context.Background(), session.ID.String(), "5.6.7.8")
	require.NoError(t, err)
	require.False(t, other.Liked)
}

func TestGetByID_InvalidID(t *testing.T) {
	svc := newTestSessionService(newFakeSessionRepo(), &fakeEmbeddingRepo{}, &fakeStorage{})

	_, err := svc.GetByID(context.Background(), "not-a-uuid", "")
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestSimilar_ReturnsNeighbors(t *testing.T) {
	repo := newFakeSessionRepo()
	session := repo.add(&db_models.ResultSession{
		RecommendedDestination: "전라남도 담양",
		QuizAnswers:            []string{"완전한 휴식과 스트레스 해소"},
	})
	embeddings := &fakeEmbeddingRepo{nearest: []repositories.NearbySession{
		{SessionID: "other-1", Destination: "경상북도 경주", Distance: 0.12},
	}}
	svc := newTestSessionService(repo, embeddings, &fakeStorage{})

	results, err := svc.Similar(context.Background(), session.ID.String(), 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "경상북도 경주", results[0].DestinationName)
	require.InDelta(t, 0.12, results[0].Distance, 1e-9)
}
