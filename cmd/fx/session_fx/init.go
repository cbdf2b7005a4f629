package session_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderpersona/internal/infra"
	"wanderpersona/internal/repositories"
	"wanderpersona/internal/services"
	"wanderpersona/pkg/utils"
)

var Module = fx.Provide(
	provideSessionRepo, provideEmbeddingRepo, provideGeoService,
	provideSessionService, provideLikeService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.SessionEmbeddingRepository {
	return repositories.NewSessionEmbeddingRepository(db)
}

func provideGeoService() services.GeoServiceInterface {
	return services.NewGeoService(os.Getenv("GEO_API_BASE_URL"))
}

func provideSessionService(
	sessionRepo repositories.SessionRepository,
	embeddingRepo repositories.SessionEmbeddingRepository,
	embedder utils.EmbeddingClientInterface,
	geo services.GeoServiceInterface,
	biorhythm services.BiorhythmServiceInterface,
	storage infra.ObjectStorage,
) services.SessionServiceInterface {
	return services.NewSessionService(sessionRepo, embeddingRepo, embedder, geo, biorhythm, storage)
}

func provideLikeService(sessionRepo repositories.SessionRepository) services.LikeServiceInterface {
	return services.NewLikeService(sessionRepo)
}
