package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mitrabahan/backend/internal/domain/entity"
	"github.com/mitrabahan/backend/internal/domain/repository"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, name, email, password, company, role, wallet_address, is_active, is_verified, created_at, last_login`

func scanAccount(row pgx.Row) (*entity.Account, error) {
	a := &entity.Account{}
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Password, &a.Company, &a.Role,
		&a.WalletAddress, &a.IsActive, &a.IsVerified, &a.CreatedAt, &a.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AccountRepository) Create(ctx context.Context, a *entity.Account) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (name, email, password, company, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, is_verified, created_at
	`, a.Name, a.Email, a.Password, a.Company, a.Role)

	err := row.Scan(&a.ID, &a.IsActive, &a.IsVerified, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return scanAccount(r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE id = $1
	`, id))
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return scanAccount(r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE email = $1
	`, email))
}

func (r *AccountRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE accounts SET last_login = $1 WHERE id = $2
	`, t, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) UpdateWallet(ctx context.Context, id string, address string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE accounts SET wallet_address = $1 WHERE id = $2
	`, address, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AccountRepository) Stats(ctx context.Context) (*entity.AccountStats, error) {
	st := &entity.AccountStats{ByRole: map[string]int64{}}

	rows, err := r.pool.Query(ctx, `
		SELECT role, count(*), count(*) FILTER (WHERE is_active)
		FROM accounts GROUP BY role
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		var total, active int64
		if err := rows.Scan(&role, &total, &active); err != nil {
			return nil, err
		}
		st.ByRole[role] = total
		st.Total += total
		st.Active += active
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	st.Inactive = st.Total - st.Active
	return st, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
