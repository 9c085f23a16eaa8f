package http

import (
	"context"
	"errors"
	"sort"

	"github.com/ftorres/marketplace-insights/internal/domain/catalog"
	"github.com/ftorres/marketplace-insights/internal/domain/insights"
	"github.com/google/uuid"
)

// In-memory fakes shared by the handler tests

type InMemoryProductRepo struct {
	products map[uuid.UUID]*catalog.Product
}

func NewInMemoryProductRepo() *InMemoryProductRepo {
	return &InMemoryProductRepo{products: make(map[uuid.UUID]*catalog.Product)}
}

func (r *InMemoryProductRepo) Create(ctx context.Context, product *catalog.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *InMemoryProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return product, nil
}

func (r *InMemoryProductRepo) List(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, error) {
	var list []*catalog.Product
	for _, product := range r.products {
		if filter.Marketplace != "" && product.Marketplace != filter.Marketplace {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		list = append(list, product)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (r *InMemoryProductRepo) Update(ctx context.Context, product *catalog.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return catalog.ErrProductNotFound
	}
	r.products[product.ID] = product
	return nil
}

func (r *InMemoryProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return catalog.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type InMemoryInsightRepo struct {
	insights []*insights.Insight
}

func NewInMemoryInsightRepo() *InMemoryInsightRepo {
	return &InMemoryInsightRepo{}
}

func (r *InMemoryInsightRepo) Create(ctx context.Context, insight *insights.Insight) error {
	r.insights = append(r.insights, insight)
	return nil
}

func (r *InMemoryInsightRepo) GetByID(ctx context.Context, id uuid.UUID) (*insights.Insight, error) {
	for _, insight := range r.insights {
		if insight.ID == id {
			return insight, nil
		}
	}
	return nil, errors.New("insight not found")
}

func (r *InMemoryInsightRepo) ListByProductID(ctx context.Context, productID uuid.UUID) ([]*insights.Insight, error) {
	var list []*insights.Insight
	for _, insight := range r.insights {
		if insight.ProductID != nil && *insight.ProductID == productID {
			list = append(list, insight)
		}
	}
	return list, nil
}

// StubGenerator returns canned text or a canned failure and counts calls
type StubGenerator struct {
	Text   string
	Err    error
	Models []string
	Calls  int
}

func (s *StubGenerator) Generate(ctx context.Context, prompt, model string) (string, error) {
	s.Calls++
	if s.Err != nil {
		return "", s.Err
	}
	return s.Text, nil
}

func (s *StubGenerator) ListModels(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Models, nil
}
