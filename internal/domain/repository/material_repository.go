package repository

import (
	"context"

	"github.com/mitrabahan/backend/internal/domain/entity"
)

// MaterialUpdate carries the mutable listing fields; nil means keep the
// stored value.
type MaterialUpdate struct {
	Name        *string
	Quantity    *int
	Price       *float64
	ImageURL    *string
	Description *string
}

// MaterialRepository defines persistence operations for material listings.
// Update and Delete must evaluate (id AND supplierID) atomically with the
// mutation, as one conditional statement, and return ErrNotFound when zero
// rows match.
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.Material) error
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Material, error)
	ListAll(ctx context.Context) ([]*entity.Material, error)
	Update(ctx context.Context, supplierID, id string, upd MaterialUpdate) (*entity.Material, error)
	Delete(ctx context.Context, supplierID, id string) error
}
