package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/services"
	"wanderpersona/pkg/utils"
)

type SessionController struct {
	sessionService services.SessionServiceInterface
}

func NewSessionController(sessionService services.SessionServiceInterface) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// viewerIdentity resolves who is looking: signed-in user id when present,
// caller IP otherwise.
func viewerIdentity(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	return c.ClientIP()
}

// Save godoc
// @Summary Persist a finished quiz session
// @Description Stores the result, re-hosts the generated image and records the caller's region
// @Tags Sessions
// @Accept json
// @Produce json
// @Param request body request_models.SaveSessionRequest true "Session payload"
// @Success 200 {object} utils.APIResponse
// @Router /sessions [post]
func (s *SessionController) Save(c *gin.Context) {
	var req request_models.SaveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := s.sessionService.SaveSession(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session saved successfully")
}

// GetByID godoc
// @Summary Get a saved session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /sessions/{id} [get]
func (s *SessionController) GetByID(c *gin.Context) {
	session, err := s.sessionService.GetByID(c.Request.Context(), c.Param("id"), viewerIdentity(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "Session retrieved successfully")
}

// Similar godoc
// @Summary Find sessions from similar travelers
// @Description Vector search over saved sessions by answer and destination similarity
// @Tags Sessions
// @Produce json
// @Param id path string true "Session id"
// @Param limit query int false "Max results"
// @Success 200 {object} utils.APIResponse
// @Router /sessions/{id}/similar [get]
func (s *SessionController) Similar(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.HandleServiceError(c, utils.ErrInvalidInput)
			return
		}
		limit = parsed
	}

	results, err := s.sessionService.Similar(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Similar sessions retrieved successfully")
}
