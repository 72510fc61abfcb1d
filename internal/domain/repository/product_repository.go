package repository

import (
	"context"

	"github.com/mitrabahan/backend/internal/domain/entity"
)

// ProductUpdate carries the mutable product fields; nil means keep the
// stored value.
type ProductUpdate struct {
	Name        *string
	Quantity    *int
	Price       *float64
	ImageURL    *string
	Description *string
}

// ProductRepository defines persistence operations for products. The same
// owner-conjunction contract as MaterialRepository applies to Update and
// Delete.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	ListByManufacturer(ctx context.Context, manufacturerID string) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, manufacturerID, id string, upd ProductUpdate) (*entity.Product, error)
	Delete(ctx context.Context, manufacturerID, id string) error
}
