package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wanderpersona/cmd/fx/account_fx"
	"wanderpersona/cmd/fx/controllers_fx"
	"wanderpersona/cmd/fx/db_fx"
	"wanderpersona/cmd/fx/genai_fx"
	"wanderpersona/cmd/fx/quiz_fx"
	"wanderpersona/cmd/fx/recommend_fx"
	"wanderpersona/cmd/fx/session_fx"
	"wanderpersona/cmd/fx/settings_fx"
	"wanderpersona/cmd/fx/storage_fx"
	"wanderpersona/internal/api/controllers"
	"wanderpersona/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		storage_fx.Module,
		settings_fx.Module,
		genai_fx.Module,
		quiz_fx.Module,
		recommend_fx.Module,
		session_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	quizController *controllers.QuizController,
	biorhythmController *controllers.BiorhythmController,
	recommendController *controllers.RecommendController,
	sessionController *controllers.SessionController,
	likeController *controllers.LikeController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		quizController, biorhythmController, recommendController,
		sessionController, likeController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	quizController *controllers.QuizController,
	biorhythmController *controllers.BiorhythmController,
	recommendController *controllers.RecommendController,
	sessionController *controllers.SessionController,
	likeController *controllers.LikeController,
	adminController *controllers.AdminController) {

	quizGroup := r.Group("/quiz")
	quizGroup.GET("/questions", quizController.GetQuestions)

	biorhythmGroup := r.Group("/biorhythm")
	biorhythmGroup.POST("/series", biorhythmController.GetSeries)
	biorhythmGroup.POST("/interpret", biorhythmController.Interpret)

	r.POST("/recommend", recommendController.Recommend)

	sessionGroup := r.Group("/sessions", middleware.OptionalJWTMiddleware())
	sessionGroup.POST("", sessionController.Save)
	sessionGroup.GET("/:id", sessionController.GetByID)
	sessionGroup.GET("/:id/similar", sessionController.Similar)

	likeGroup := r.Group("/likes", middleware.OptionalJWTMiddleware())
	likeGroup.POST("/toggle", likeController.Toggle)
	likeGroup.GET("/status", likeController.Status)
	likeGroup.GET("/leaderboard", likeController.Leaderboard)

	r.GET("/branding", adminController.GetBranding)

	adminGroup := r.Group("/admin")
	adminGroup.POST("/register", adminController.Register)
	adminGroup.POST("/login", adminController.Login)

	adminProtected := adminGroup.Group("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminProtected.PUT("/branding", adminController.UpdateBranding)
	adminProtected.POST("/branding/logo", adminController.UploadLogo)
}
