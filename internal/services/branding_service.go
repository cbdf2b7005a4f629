package services

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"wanderpersona/internal/infra"
	"wanderpersona/internal/models/db_models"
	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/models/response_models"
	"wanderpersona/internal/repositories"
	"wanderpersona/pkg/utils"
)

type BrandingServiceInterface interface {
	Get(ctx context.Context) (*response_models.BrandingResponse, error)
	Update(ctx context.Context, request request_models.UpdateBrandingRequest) (*response_models.BrandingResponse, error)
	UploadLogo(ctx context.Context, fileName string, data []byte, contentType string) (string, error)
}

type BrandingService struct {
	brandingRepo repositories.BrandingRepository
	settings     SettingsServiceInterface
	storage      infra.ObjectStorage
}

func NewBrandingService(
	brandingRepo repositories.BrandingRepository,
	settings SettingsServiceInterface,
	storage infra.ObjectStorage,
) BrandingServiceInterface {
	return &BrandingService{
		brandingRepo: brandingRepo,
		settings:     settings,
		storage:      storage,
	}
}

func (b *BrandingService) Get(ctx context.Context) (*response_models.BrandingResponse, error) {
	settings, err := b.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &response_models.BrandingResponse{
		SiteTitle:   settings.SiteTitle,
		SiteTagline: settings.SiteTagline,
		LogoURL:     settings.LogoURL,
		TextModel:   settings.TextModel,
		ImageModel:  settings.ImageModel,
	}, nil
}

// Update writes a new branding row and drops the settings cache so the next
// recommendation picks up the change immediately.
func (b *BrandingService) Update(ctx context.Context, request request_models.UpdateBrandingRequest) (*response_models.BrandingResponse, error) {
	branding := &db_models.Branding{
		SiteTitle:   request.SiteTitle,
		SiteTagline: request.SiteTagline,
		LogoURL:     request.LogoURL,
		TextModel:   request.TextModel,
		ImageModel:  request.ImageModel,
	}

	if err := b.brandingRepo.Save(ctx, branding); err != nil {
		return nil, err
	}

	b.settings.Invalidate()
	return b.Get(ctx)
}

func (b *BrandingService) UploadLogo(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", utils.ErrInvalidInput
	}

	ext := strings.ToLower(path.Ext(fileName))
	if ext == "" {
		ext = ".png"
	}
	key := fmt.Sprintf("branding/%s%s", uuid.New().String(), ext)

	url, err := b.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", utils.ErrStorageError
	}
	return url, nil
}
