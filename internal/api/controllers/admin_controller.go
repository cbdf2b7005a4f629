package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/models/response_models"
	"wanderpersona/internal/services"
	"wanderpersona/pkg/utils"
)

const maxLogoUploadBytes = 5 << 20

type AdminController struct {
	accountService  services.AccountServiceInterface
	brandingService services.BrandingServiceInterface
}

func NewAdminController(
	accountService services.AccountServiceInterface,
	brandingService services.BrandingServiceInterface,
) *AdminController {
	return &AdminController{
		accountService:  accountService,
		brandingService: brandingService,
	}
}

// Register godoc
// @Summary Register an admin account
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/register [post]
func (a *AdminController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Login to the admin console
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (a *AdminController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Login successful")
}

// GetBranding godoc
// @Summary Get public site branding
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /branding [get]
func (a *AdminController) GetBranding(c *gin.Context) {
	branding, err := a.brandingService.Get(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, branding, "Branding retrieved successfully")
}

// UpdateBranding godoc
// @Summary Update site branding and model settings
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.UpdateBrandingRequest true "Branding payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/branding [put]
func (a *AdminController) UpdateBranding(c *gin.Context) {
	var req request_models.UpdateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	branding, err := a.brandingService.Update(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, branding, "Branding updated successfully")
}

// UploadLogo godoc
// @Summary Upload a branding image
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} utils.APIResponse
// @Router /admin/branding/logo [post]
func (a *AdminController) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Image file is required")
		return
	}
	if fileHeader.Size > maxLogoUploadBytes {
		utils.RespondError(c, http.StatusBadRequest, "Image file is too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.HandleServiceError(c, utils.ErrStorageError)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrStorageError)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	url, err := a.brandingService.UploadLogo(c.Request.Context(), fileHeader.Filename, data, contentType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.UploadResponse{URL: url}, "Image uploaded successfully")
}
