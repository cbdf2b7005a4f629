package genai_fx

import (
	"os"

	"go.uber.org/fx"

	"wanderpersona/pkg/utils"
)

var Module = fx.Provide(
	provideTextClient, provideImageClient, provideEmbeddingClient)

func provideTextClient() utils.TextGenerationClient {
	return utils.NewGeminiTextClient()
}

func provideImageClient() utils.ImageGenerationClient {
	return utils.NewGeminiImageClient(os.Getenv("GENERATIVE_LANGUAGE_BASE_URL"))
}

func provideEmbeddingClient() utils.EmbeddingClientInterface {
	return utils.NewEmbeddingClient(
		os.Getenv("EMBEDDING_PROVIDER"),
		os.Getenv("OPENAI_API_KEY"),
		os.Getenv("EMBEDDING_MODEL"),
	)
}
