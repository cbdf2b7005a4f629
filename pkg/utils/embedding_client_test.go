package utils

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashEmbeddingClient_Deterministic(t *testing.T) {
	client := NewHashEmbeddingClient()

	first, err := client.GetEmbedding(context.Background(), "전라남도 담양 힐링 여행")
	require.NoError(t, err)
	second, err := client.GetEmbedding(context.Background(), "전라남도 담양 힐링 여행")
	require.NoError(t, err)

	require.Equal(t, first.Slice(), second.Slice())
}

func TestHashEmbeddingClient_NormalizedAndSized(t *testing.T) {
	client := NewHashEmbeddingClient()

	vec, err := client.GetEmbedding(context.Background(), "경상북도 경주 역사 탐방")
	require.NoError(t, err)

	values := vec.Slice()
	require.Len(t, values, embeddingDimensions)

	var norm float64
	for _, v := range values {
		norm += float64(v) * float64(v)
	}
	require.InDelta(t, 1.0, math.Sqrt(norm), 1e-3)
}

func TestHashEmbeddingClient_DifferentTextsDiffer(t *testing.T) {
	client := NewHashEmbeddingClient()

	a, err := client.GetEmbedding(context.Background(), "바다 휴양")
	require.NoError(t, err)
	b, err := client.GetEmbedding(context.Background(), "산악 트레킹")
	require.NoError(t, err)

	require.NotEqual(t, a.Slice(), b.Slice())
}

func TestNewEmbeddingClient_FallsBackToHash(t *testing.T) {
	client := NewEmbeddingClient("", "", "")
	require.IsType(t, &HashEmbeddingClient{}, client)

	client = NewEmbeddingClient("openai", "", "")
	require.IsType(t, &HashEmbeddingClient{}, client)

	client = NewEmbeddingClient("openai", "sk-test", "")
	require.IsType(t, &OpenAIEmbeddingClient{}, client)
}
