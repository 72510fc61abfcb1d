package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mitrabahan/backend/internal/domain/entity"
	"github.com/mitrabahan/backend/internal/domain/repository"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, material_id, name, quantity, price, image_url, description, manufacturer_id, manufacturer_name, manufacturer_company, external_tx_hash, created_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	p := &entity.Product{}
	err := row.Scan(&p.ID, &p.MaterialID, &p.Name, &p.Quantity, &p.Price, &p.ImageURL,
		&p.Description, &p.ManufacturerID, &p.ManufacturerName, &p.ManufacturerCompany,
		&p.ExternalTxHash, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create persists the finalize call of the purchase workflow. The
// external tx hash is stored verbatim and deliberately not deduplicated.
func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (material_id, name, quantity, price, image_url, description,
			manufacturer_id, manufacturer_name, manufacturer_company, external_tx_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, p.MaterialID, p.Name, p.Quantity, p.Price, p.ImageURL, p.Description,
		p.ManufacturerID, p.ManufacturerName, p.ManufacturerCompany, p.ExternalTxHash)

	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *ProductRepository) ListByManufacturer(ctx context.Context, manufacturerID string) ([]*entity.Product, error) {
	return r.list(ctx, `
		SELECT `+productColumns+` FROM products
		WHERE manufacturer_id = $1
		ORDER BY created_at DESC, id DESC
	`, manufacturerID)
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, `
		SELECT `+productColumns+` FROM products
		ORDER BY created_at DESC, id DESC
	`)
}

func (r *ProductRepository) list(ctx context.Context, sql string, args ...any) ([]*entity.Product, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, manufacturerID, id string, upd repository.ProductUpdate) (*entity.Product, error) {
	return scanProduct(r.pool.QueryRow(ctx, `
		UPDATE products SET
			name        = COALESCE($3, name),
			quantity    = COALESCE($4, quantity),
			price       = COALESCE($5, price),
			image_url   = COALESCE($6, image_url),
			description = COALESCE($7, description)
		WHERE id = $1 AND manufacturer_id = $2
		RETURNING `+productColumns+`
	`, id, manufacturerID, upd.Name, upd.Quantity, upd.Price, upd.ImageURL, upd.Description))
}

func (r *ProductRepository) Delete(ctx context.Context, manufacturerID, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM products WHERE id = $1 AND manufacturer_id = $2
	`, id, manufacturerID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
