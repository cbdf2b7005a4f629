package settings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderpersona/internal/repositories"
	"wanderpersona/internal/services"
	mem "wanderpersona/pkg/memcache"
)

var Module = fx.Provide(
	provideSettingsCache, provideBrandingRepo, provideSettingsService)

func provideSettingsCache() *mem.SettingsCache {
	return mem.NewSettingsCache(mem.DefaultSettingsTTL)
}

func provideBrandingRepo(db *gorm.DB) repositories.BrandingRepository {
	return repositories.NewBrandingRepository(db)
}

func provideSettingsService(brandingRepo repositories.BrandingRepository, cache *mem.SettingsCache) services.SettingsServiceInterface {
	return services.NewSettingsService(brandingRepo, cache)
}
