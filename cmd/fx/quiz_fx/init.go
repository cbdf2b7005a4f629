package quiz_fx

import (
	"math/rand"
	"time"

	"go.uber.org/fx"

	"wanderpersona/internal/services"
)

var Module = fx.Provide(provideQuizService)

func provideQuizService() services.QuizServiceInterface {
	return services.NewQuizService(rand.New(rand.NewSource(time.Now().UnixNano())))
}
