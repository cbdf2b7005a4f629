package services

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"wanderpersona/internal/models/db_models"
	"wanderpersona/internal/repositories"
	"wanderpersona/pkg/memcache"
	"wanderpersona/pkg/utils"
)

const (
	settingsCacheKey  = "admin_settings"
	defaultTextModel  = "gemini-2.0-flash"
	defaultImageModel = "gemini-2.0-flash-preview-image-generation"
)

// AdminSettings is the resolved generation configuration: branding row when
// one exists, environment fallbacks otherwise. API keys never come from the
// database.
type AdminSettings struct {
	TextModel     string
	TextModelKey  string
	ImageModel    string
	ImageModelKey string
	SiteTitle     string
	SiteTagline   string
	LogoURL       string
}

type SettingsServiceInterface interface {
	Get(ctx context.Context) (*AdminSettings, error)
	Invalidate()
}

type SettingsService struct {
	brandingRepo repositories.BrandingRepository
	cache        *memcache.SettingsCache
}

func NewSettingsService(brandingRepo repositories.BrandingRepository, cache *memcache.SettingsCache) SettingsServiceInterface {
	return &SettingsService{
		brandingRepo: brandingRepo,
		cache:        cache,
	}
}

func (s *SettingsService) Get(ctx context.Context) (*AdminSettings, error) {
	if cached, ok := s.cache.Get(settingsCacheKey); ok {
		if settings, ok := cached.(*AdminSettings); ok {
			return settings, nil
		}
	}

	settings := settingsFromEnv()

	branding, err := s.brandingRepo.GetLatest(ctx)
	switch {
	case err == nil:
		applyBranding(settings, branding)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// env fallbacks only
	default:
		log.Printf("Failed to load branding row, using env settings: %v", err)
	}

	if settings.TextModelKey == "" {
		return nil, utils.ErrSettingsUnavailable
	}
	if settings.ImageModelKey == "" {
		settings.ImageModelKey = settings.TextModelKey
	}

	s.cache.Set(settingsCacheKey, settings)
	return settings, nil
}

func (s *SettingsService) Invalidate() {
	s.cache.Invalidate(settingsCacheKey)
}

func settingsFromEnv() *AdminSettings {
	textModel := os.Getenv("TEXT_MODEL")
	if textModel == "" {
		textModel = defaultTextModel
	}
	imageModel := os.Getenv("IMAGE_MODEL")
	if imageModel == "" {
		imageModel = defaultImageModel
	}

	textKey := os.Getenv("GEMINI_API_KEY")
	if textKey == "" {
		textKey = os.Getenv("GOOGLE_API_KEY")
	}

	return &AdminSettings{
		TextModel:     textModel,
		TextModelKey:  textKey,
		ImageModel:    imageModel,
		ImageModelKey: os.Getenv("IMAGE_API_KEY"),
		SiteTitle:     os.Getenv("ADMIN_TITLE"),
		LogoURL:       os.Getenv("ADMIN_IMAGE_URL"),
	}
}

func applyBranding(settings *AdminSettings, branding *db_models.Branding) {
	if branding.TextModel != "" {
		settings.TextModel = branding.TextModel
	}
	if branding.ImageModel != "" {
		settings.ImageModel = branding.ImageModel
	}
	if branding.SiteTitle != "" {
		settings.SiteTitle = branding.SiteTitle
	}
	if branding.SiteTagline != "" {
		settings.SiteTagline = branding.SiteTagline
	}
	if branding.LogoURL != "" {
		settings.LogoURL = branding.LogoURL
	}
}
