package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wanderpersona/internal/models/db_models"
	"wanderpersona/pkg/memcache"
	"wanderpersona/pkg/utils"
)

type fakeBrandingRepo struct {
	branding *db_models.Branding
	err      error
	calls    int
}

func (f *fakeBrandingRepo) GetLatest(context.Context) (*db_models.Branding, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.branding == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.branding, nil
}

func (f *fakeBrandingRepo) Save(_ context.Context, branding *db_models.Branding) error {
	f.branding = branding
	return nil
}

func TestSettings_EnvFallbacks(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "text-key")
	t.Setenv("TEXT_MODEL", "")
	t.Setenv("IMAGE_MODEL", "")
	t.Setenv("IMAGE_API_KEY", "")

	svc := NewSettingsService(&fakeBrandingRepo{}, memcache.NewSettingsCache(time.Minute))

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "gemini-2.0-flash", settings.TextModel)
	require.Equal(t, "gemini-2.0-flash-preview-image-generation", settings.ImageModel)
	require.Equal(t, "text-key", settings.TextModelKey)
	// image key falls back to the text key
	require.Equal(t, "text-key", settings.ImageModelKey)
}

func TestSettings_BrandingOverridesEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "text-key")

	repo := &fakeBrandingRepo{branding: &db_models.Branding{
		TextModel:  "gemini-2.5-pro",
		ImageModel: "imagen-4",
		SiteTitle:  "여행 성향 진단",
	}}
	svc := NewSettingsService(repo, memcache.NewSettingsCache(time.Minute))

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "gemini-2.5-pro", settings.TextModel)
	require.Equal(t, "imagen-4", settings.ImageModel)
	require.Equal(t, "여행 성향 진단", settings.SiteTitle)
}

func TestSettings_MissingKeyIsUnavailable(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	svc := NewSettingsService(&fakeBrandingRepo{}, memcache.NewSettingsCache(time.Minute))

	_, err := svc.Get(context.Background())
	require.ErrorIs(t, err, utils.ErrSettingsUnavailable)
}

func TestSettings_CachedUntilInvalidated(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "text-key")

	repo := &fakeBrandingRepo{}
	svc := NewSettingsService(repo, memcache.NewSettingsCache(time.Minute))

	_, err := svc.Get(context.Background())
	require.NoError(t, err)
	_, err = svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	svc.Invalidate()
	_, err = svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, repo.calls)
}
