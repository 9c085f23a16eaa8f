package catalog

import (
	"context"
	"log"

	"github.com/ftorres/marketplace-insights/internal/domain/catalog"
	"github.com/google/uuid"
)

// Service orchestrates product catalog use cases
type Service struct {
	productRepo catalog.ProductRepository
}

// NewService creates a new catalog application service
func NewService(productRepo catalog.ProductRepository) *Service {
	return &Service{productRepo: productRepo}
}

// CreateProduct validates and stores a new product
func (s *Service) CreateProduct(ctx context.Context, name, description, category string, price *float64, marketplace, externalID, url string) (*catalog.Product, error) {
	product, err := catalog.NewProduct(name, description, category, price, marketplace, externalID, url)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		log.Printf("[Catalog] Failed to create product: %v", err)
		return nil, err
	}

	log.Printf("[Catalog] Product created: id=%s, name=%s", product.ID, product.Name)
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// ListProducts retrieves products matching the filter
func (s *Service) ListProducts(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.productRepo.List(ctx, filter)
}

// UpdateProduct applies a partial update to a stored product
func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, update catalog.ProductUpdate) (*catalog.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Apply(update); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		log.Printf("[Catalog] Failed to update product: id=%s, error=%v", id, err)
		return nil, err
	}

	log.Printf("[Catalog] Product updated: id=%s", id)
	return product, nil
}

// DeleteProduct removes a product; its insights cascade at the database level
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("[Catalog] Product deleted: id=%s", id)
	return nil
}
