package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/services"
	"wanderpersona/pkg/utils"
)

type RecommendController struct {
	recommendService services.RecommendServiceInterface
}

func NewRecommendController(recommendService services.RecommendServiceInterface) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
	}
}

// Recommend godoc
// @Summary Generate a destination recommendation
// @Description Combines today's biorhythm with quiz answers and returns a generated domestic destination with image
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body request_models.RecommendRequest true "Recommendation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /recommend [post]
func (r *RecommendController) Recommend(c *gin.Context) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := r.recommendService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Recommendation generated successfully")
}
