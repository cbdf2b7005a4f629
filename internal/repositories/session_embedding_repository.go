package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	dbm "wanderpersona/internal/models/db_models"
	"wanderpersona/pkg/utils"
)

type NearbySession struct {
	SessionID   string  `gorm:"column:session_id"`
	Destination string  `gorm:"column:destination"`
	Distance    float64 `gorm:"column:distance"`
}

type SessionEmbeddingRepository interface {
	Create(ctx context.Context, embedding *dbm.SessionEmbedding) error
	FindNearest(ctx context.Context, vector pgvector.Vector, excludeSessionID string, limit int) ([]NearbySession, error)
}

type sessionEmbeddingRepository struct {
	db *gorm.DB
}

func NewSessionEmbeddingRepository(db *gorm.DB) SessionEmbeddingRepository {
	return &sessionEmbeddingRepository{db: db}
}

func (r *sessionEmbeddingRepository) Create(ctx context.Context, embedding *dbm.SessionEmbedding) error {
	if err := r.db.WithContext(ctx).Create(embedding).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *sessionEmbeddingRepository) FindNearest(ctx context.Context, vector pgvector.Vector, excludeSessionID string, limit int) ([]NearbySession, error) {
	if limit <= 0 {
		limit = 5
	}

	var results []NearbySession
	query := `
        SELECT session_id, destination, (embedding <=> $1) AS distance
        FROM session_embeddings
        WHERE session_id <> $2
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, vector.String(), excludeSessionID, limit).Scan(&results).Error
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return results, nil
}
