package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductFilter narrows a product listing. Zero values mean "no filter".
type ProductFilter struct {
	Marketplace string
	Category    string
	Limit       int
	Offset      int
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
