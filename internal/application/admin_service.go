package application

import (
	"context"

	"github.com/mitrabahan/backend/internal/domain/entity"
	repo "github.com/mitrabahan/backend/internal/domain/repository"
)

// AdminService is a read-only view over the credential store.
type AdminService struct {
	Accounts repo.AccountRepository
}

func NewAdminService(accounts repo.AccountRepository) *AdminService {
	return &AdminService{Accounts: accounts}
}

// ListAccounts returns every account, newest first. Callers must never
// serialize the Password field.
func (s *AdminService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	return s.Accounts.List(ctx)
}

// Stats recomputes the aggregate on every call; there is no cache.
func (s *AdminService) Stats(ctx context.Context) (*entity.AccountStats, error) {
	return s.Accounts.Stats(ctx)
}
