package recommend_fx

import (
	"go.uber.org/fx"

	"wanderpersona/internal/services"
	"wanderpersona/pkg/utils"
)

var Module = fx.Provide(
	provideBiorhythmService, provideRecommendService, provideInterpretService)

func provideBiorhythmService() services.BiorhythmServiceInterface {
	return services.NewBiorhythmService()
}

func provideRecommendService(
	settings services.SettingsServiceInterface,
	biorhythm services.BiorhythmServiceInterface,
	textClient utils.TextGenerationClient,
	imgClient utils.ImageGenerationClient,
) services.RecommendServiceInterface {
	return services.NewRecommendService(settings, biorhythm, textClient, imgClient)
}

func provideInterpretService(
	settings services.SettingsServiceInterface,
	biorhythm services.BiorhythmServiceInterface,
	textClient utils.TextGenerationClient,
) services.InterpretServiceInterface {
	return services.NewInterpretService(settings, biorhythm, textClient)
}
