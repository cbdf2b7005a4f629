package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// SessionEmbedding is the vector projection of a saved session, used to find
// travelers with similar rhythm and answers.
type SessionEmbedding struct {
	SessionID   string `gorm:"primaryKey;column:session_id"`
	Destination string
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
