package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/models/response_models"
	"wanderpersona/internal/services"
	"wanderpersona/pkg/utils"
)

const (
	seriesDaysBefore = 14
	seriesDaysAfter  = 14
)

type BiorhythmController struct {
	biorhythmService services.BiorhythmServiceInterface
	interpretService services.InterpretServiceInterface
}

func NewBiorhythmController(
	biorhythmService services.BiorhythmServiceInterface,
	interpretService services.InterpretServiceInterface,
) *BiorhythmController {
	return &BiorhythmController{
		biorhythmService: biorhythmService,
		interpretService: interpretService,
	}
}

// GetSeries godoc
// @Summary Get biorhythm values around a date
// @Description Returns today's four rhythm values plus a 29 day window for charting
// @Tags Biorhythm
// @Accept json
// @Produce json
// @Param request body request_models.BiorhythmRequest true "Birth date payload"
// @Success 200 {object} utils.APIResponse
// @Router /biorhythm/series [post]
func (b *BiorhythmController) GetSeries(c *gin.Context) {
	var req request_models.BiorhythmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidInput)
		return
	}

	target := utils.NowKST()
	if req.TargetDate != "" {
		target, err = time.Parse("2006-01-02", req.TargetDate)
		if err != nil {
			utils.HandleServiceError(c, utils.ErrInvalidInput)
			return
		}
	}

	utils.RespondSuccess(c, response_models.BiorhythmSeriesResponse{
		Today:  b.biorhythmService.Compute(birthDate, target),
		Series: b.biorhythmService.Series(birthDate, target, seriesDaysBefore, seriesDaysAfter),
	}, "Biorhythm computed successfully")
}

// Interpret godoc
// @Summary Interpret today's travel condition
// @Description Returns a short Korean reading of today's rhythm, falling back to canned copy when generation fails
// @Tags Biorhythm
// @Accept json
// @Produce json
// @Param request body request_models.InterpretRequest true "Birth date payload"
// @Success 200 {object} utils.APIResponse
// @Router /biorhythm/interpret [post]
func (b *BiorhythmController) Interpret(c *gin.Context) {
	var req request_models.InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidInput)
		return
	}

	result := b.interpretService.Interpret(c.Request.Context(), birthDate)
	utils.RespondSuccess(c, result, "Interpretation generated successfully")
}
