package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderpersona/internal/infra"
	"wanderpersona/internal/repositories"
	"wanderpersona/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideBrandingService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}

func provideBrandingService(
	brandingRepo repositories.BrandingRepository,
	settings services.SettingsServiceInterface,
	storage infra.ObjectStorage,
) services.BrandingServiceInterface {
	return services.NewBrandingService(brandingRepo, settings, storage)
}
