package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/models/response_models"
	"wanderpersona/internal/services"
	"wanderpersona/pkg/utils"
)

type LikeController struct {
	likeService services.LikeServiceInterface
}

func NewLikeController(likeService services.LikeServiceInterface) *LikeController {
	return &LikeController{
		likeService: likeService,
	}
}

// Toggle godoc
// @Summary Toggle a like on a session
// @Description One like per caller per KST day; toggling again the same day removes it
// @Tags Likes
// @Accept json
// @Produce json
// @Param request body request_models.LikeRequest true "Like payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /likes/toggle [post]
func (l *LikeController) Toggle(c *gin.Context) {
	var req request_models.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var (
		result *response_models.LikeResponse
		err    error
	)
	switch {
	case req.SessionID != "":
		result, err = l.likeService.Toggle(c.Request.Context(), req.SessionID, viewerIdentity(c))
	case req.Destination != "":
		result, err = l.likeService.ToggleByDestination(c.Request.Context(), req.Destination, req.Email, req.BirthDate, viewerIdentity(c))
	default:
		utils.RespondError(c, http.StatusBadRequest, "Either session_id or destination is required")
		return
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Like toggled successfully")
}

// Status godoc
// @Summary Like status for a session
// @Description Returns the like count and whether the caller has liked it today
// @Tags Likes
// @Produce json
// @Param session_id query string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /likes/status [get]
func (l *LikeController) Status(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	result, err := l.likeService.Status(c.Request.Context(), sessionID, viewerIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Like status retrieved successfully")
}

// Leaderboard godoc
// @Summary Most liked destinations
// @Description Likes-descending list, one entry per destination, capped at 15
// @Tags Likes
// @Produce json
// @Param exclude_id query string false "Session id to hide"
// @Param exclude_email query string false "Caller email"
// @Param exclude_birth_date query string false "Caller birth date"
// @Success 200 {object} utils.APIResponse
// @Router /likes/leaderboard [get]
func (l *LikeController) Leaderboard(c *gin.Context) {
	entries, err := l.likeService.Leaderboard(c.Request.Context(), services.LeaderboardFilter{
		ExcludeSessionID: c.Query("exclude_id"),
		ExcludeEmail:     c.Query("exclude_email"),
		ExcludeBirthDate: c.Query("exclude_birth_date"),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Leaderboard retrieved successfully")
}
