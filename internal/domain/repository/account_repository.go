package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mitrabahan/backend/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no record matches the query. For
	// owner-scoped mutations it also covers "exists but owned by someone
	// else": the two cases are indistinguishable on purpose.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned on a unique-key conflict.
	ErrDuplicate = errors.New("duplicate key")
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, a *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
	UpdateWallet(ctx context.Context, id string, address string) error
	List(ctx context.Context) ([]*entity.Account, error)
	Stats(ctx context.Context) (*entity.AccountStats, error)
}
