package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"wanderpersona/internal/models/db_models"
	"wanderpersona/internal/models/request_models"
	"wanderpersona/pkg/utils"
)

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) Create(_ context.Context, account *db_models.Account) error {
	if _, ok := f.accounts[account.Email]; ok {
		return utils.ErrEmailAlreadyExists
	}
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*db_models.Account, error) {
	account, ok := f.accounts[email]
	if !ok {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func TestAccount_RegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeAccountRepo()
	svc := NewAccountService(repo)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "관리자",
		Email:       "admin@example.com",
		Password:    "pass1234",
	})
	require.NoError(t, err)
	require.Equal(t, "admin", repo.accounts["admin@example.com"].Role)

	account, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "admin@example.com",
		Password: "pass1234",
	})
	require.NoError(t, err)
	require.NotEmpty(t, account.Token)
	require.Equal(t, "관리자", account.DisplayName)
}

func TestAccount_DuplicateEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	req := request_models.SignUpRequest{DisplayName: "관리자", Email: "admin@example.com", Password: "pass1234"}
	require.NoError(t, svc.CreateAccount(context.Background(), req))
	require.ErrorIs(t, svc.CreateAccount(context.Background(), req), utils.ErrEmailAlreadyExists)
}

func TestAccount_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAccountService(newFakeAccountRepo())
	require.NoError(t, svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "관리자", Email: "admin@example.com", Password: "pass1234",
	}))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-pass",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccount_UnknownEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "pass1234",
	})
	require.ErrorIs(t, err, utils.ErrAccountNotFound)
}
