package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	dbm "wanderpersona/internal/models/db_models"
	"wanderpersona/pkg/utils"
)

type AccountRepository interface {
	Create(ctx context.Context, account *dbm.Account) error
	GetByEmail(ctx context.Context, email string) (*dbm.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *dbm.Account) error {
	err := r.db.WithContext(ctx).Create(account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrEmailAlreadyExists
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	var account dbm.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrAccountNotFound
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &account, nil
}
