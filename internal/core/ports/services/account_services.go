package services

import (
	"context"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	"github.com/reymancasio5-bit/accountingproject/internal/dto"
)

// AccountSvcFacade exposes chart-of-accounts operations to handlers.
type AccountSvcFacade interface {
	// CreateAccount adds a new account to the chart.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the full chart ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// UpdateAccount applies the provided field updates.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account. Fails with apperrors.ErrConflict when
	// any journal line still references it.
	DeleteAccount(ctx context.Context, accountID string) error
}
