package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderpersona/internal/models/response_models"
	"wanderpersona/internal/services"
	"wanderpersona/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// GetQuestions godoc
// @Summary Get a personality quiz round
// @Description Returns a stratified random sample of quiz questions, every category represented
// @Tags Quiz
// @Produce json
// @Param per_category query int false "Questions per category"
// @Success 200 {object} utils.APIResponse
// @Router /quiz/questions [get]
func (q *QuizController) GetQuestions(c *gin.Context) {
	perCategory := services.DefaultQuestionsPerCategory
	if raw := c.Query("per_category"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.HandleServiceError(c, utils.ErrInvalidInput)
			return
		}
		perCategory = parsed
	}

	questions := q.quizService.Sample(perCategory)

	utils.RespondSuccess(c, response_models.QuizResponse{
		Questions: questions,
		Total:     len(questions),
	}, "Quiz questions retrieved successfully")
}
