package controllers_fx

import (
	"go.uber.org/fx"

	"wanderpersona/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewQuizController),
	fx.Provide(controllers.NewBiorhythmController),
	fx.Provide(controllers.NewRecommendController),
	fx.Provide(controllers.NewSessionController),
	fx.Provide(controllers.NewLikeController),
	fx.Provide(controllers.NewAdminController))
