package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mitrabahan/backend/internal/domain/entity"
	"github.com/mitrabahan/backend/internal/domain/repository"
)

type MaterialRepository struct {
	pool *pgxpool.Pool
}

func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{pool: pool}
}

const materialColumns = `id, name, quantity, price, image_url, description, supplier_id, supplier_name, supplier_company, created_at`

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	m := &entity.Material{}
	err := row.Scan(&m.ID, &m.Name, &m.Quantity, &m.Price, &m.ImageURL, &m.Description,
		&m.SupplierID, &m.SupplierName, &m.SupplierCompany, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MaterialRepository) Create(ctx context.Context, m *entity.Material) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO materials (name, quantity, price, image_url, description, supplier_id, supplier_name, supplier_company)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, m.Name, m.Quantity, m.Price, m.ImageURL, m.Description, m.SupplierID, m.SupplierName, m.SupplierCompany)

	return row.Scan(&m.ID, &m.CreatedAt)
}

func (r *MaterialRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Material, error) {
	return r.list(ctx, `
		SELECT `+materialColumns+` FROM materials
		WHERE supplier_id = $1
		ORDER BY created_at DESC, id DESC
	`, supplierID)
}

func (r *MaterialRepository) ListAll(ctx context.Context) ([]*entity.Material, error) {
	return r.list(ctx, `
		SELECT `+materialColumns+` FROM materials
		ORDER BY created_at DESC, id DESC
	`)
}

func (r *MaterialRepository) list(ctx context.Context, sql string, args ...any) ([]*entity.Material, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update applies the partial update in a single conditional statement.
// The (id AND supplier_id) predicate is evaluated atomically with the
// mutation, so a non-owner gets the same ErrNotFound as a missing id.
func (r *MaterialRepository) Update(ctx context.Context, supplierID, id string, upd repository.MaterialUpdate) (*entity.Material, error) {
	return scanMaterial(r.pool.QueryRow(ctx, `
		UPDATE materials SET
			name        = COALESCE($3, name),
			quantity    = COALESCE($4, quantity),
			price       = COALESCE($5, price),
			image_url   = COALESCE($6, image_url),
			description = COALESCE($7, description)
		WHERE id = $1 AND supplier_id = $2
		RETURNING `+materialColumns+`
	`, id, supplierID, upd.Name, upd.Quantity, upd.Price, upd.ImageURL, upd.Description))
}

func (r *MaterialRepository) Delete(ctx context.Context, supplierID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM materials WHERE id = $1 AND supplier_id = $2
	`, id, supplierID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.MaterialRepository = (*MaterialRepository)(nil)
