package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/pgvector/pgvector-go"
)

const embeddingDimensions = 1536

// EmbeddingClientInterface turns free text into a vector for similarity
// search over saved sessions.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// NewEmbeddingClient picks the embedding backend. Without an OpenAI key the
// deterministic hash embedder keeps similarity search working offline.
func NewEmbeddingClient(provider, apiKey, model string) EmbeddingClientInterface {
	if provider == "openai" && apiKey != "" {
		return NewOpenAIEmbeddingClient(apiKey, model)
	}
	return NewHashEmbeddingClient()
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient(apiKey, model string) *OpenAIEmbeddingClient {
	m := openai.SmallEmbedding3
	if model != "" {
		m = openai.EmbeddingModel(model)
	}
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(apiKey),
		model:  m,
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("create embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("embedding response is empty")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

// HashEmbeddingClient maps text to a stable pseudo-embedding. Identical
// inputs always produce identical vectors, so nearest-neighbor queries stay
// meaningful even though the space carries no semantics.
type HashEmbeddingClient struct{}

func NewHashEmbeddingClient() *HashEmbeddingClient {
	return &HashEmbeddingClient{}
}

func (c *HashEmbeddingClient) GetEmbedding(_ context.Context, text string) (pgvector.Vector, error) {
	vec := make([]float32, embeddingDimensions)

	words := strings.Fields(strings.ToLower(text))
	for _, word := range words {
		h := fnv.New32a()
		h.Write([]byte(word))
		seed := float64(h.Sum32())
		for i := range vec {
			vec[i] += float32(math.Sin(seed+float64(i)) * 0.1)
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}

	return pgvector.NewVector(vec), nil
}
