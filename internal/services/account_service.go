package services

import (
	"context"
	"log"
	"time"

	"wanderpersona/internal/models/db_models"
	"wanderpersona/internal/models/request_models"
	"wanderpersona/internal/models/response_models"
	"wanderpersona/internal/repositories"
	"wanderpersona/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	log.Printf("Login process took %s", time.Since(startTime))

	return &response_models.AccountResponse{
		ID:          account.ID.String(),
		DisplayName: account.Name,
		Email:       account.Email,
		Role:        account.Role,
		Token:       token,
	}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.GetByEmail(ctx, request.Email)
	if err != nil && err != utils.ErrAccountNotFound {
		return err
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	return a.accountRepo.Create(ctx, &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashed,
		Role:         "admin",
	})
}
