package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "wanderpersona/internal/models/db_models"
	"wanderpersona/pkg/utils"
)

type BrandingRepository interface {
	GetLatest(ctx context.Context) (*dbm.Branding, error)
	Save(ctx context.Context, branding *dbm.Branding) error
}

type brandingRepository struct {
	db *gorm.DB
}

func NewBrandingRepository(db *gorm.DB) BrandingRepository {
	return &brandingRepository{db: db}
}

func (r *brandingRepository) GetLatest(ctx context.Context) (*dbm.Branding, error) {
	var branding dbm.Branding
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&branding).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &branding, nil
}

func (r *brandingRepository) Save(ctx context.Context, branding *dbm.Branding) error {
	if err := r.db.WithContext(ctx).Create(branding).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
