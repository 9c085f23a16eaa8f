package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Product represents a marketplace product record
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Category    string
	Price       *float64
	Marketplace string
	ExternalID  string
	URL         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Business rules and validation

var (
	ErrInvalidName        = errors.New("product name is required")
	ErrInvalidMarketplace = errors.New("marketplace is required")
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrProductNotFound    = errors.New("product not found")
)

// NewProduct creates a new product with validation
func NewProduct(name, description, category string, price *float64, marketplace, externalID, url string) (*Product, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if marketplace == "" {
		return nil, ErrInvalidMarketplace
	}
	if price != nil && *price < 0 {
		return nil, ErrNegativePrice
	}

	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Category:    category,
		Price:       price,
		Marketplace: marketplace,
		ExternalID:  externalID,
		URL:         url,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ProductUpdate carries the mutable fields of a product update.
// Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Marketplace *string
	ExternalID  *string
	URL         *string
}

// Apply applies the update to the product and bumps UpdatedAt
func (p *Product) Apply(update ProductUpdate) error {
	if update.Name != nil {
		if *update.Name == "" {
			return ErrInvalidName
		}
		p.Name = *update.Name
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Category != nil {
		p.Category = *update.Category
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return ErrNegativePrice
		}
		p.Price = update.Price
	}
	if update.Marketplace != nil {
		if *update.Marketplace == "" {
			return ErrInvalidMarketplace
		}
		p.Marketplace = *update.Marketplace
	}
	if update.ExternalID != nil {
		p.ExternalID = *update.ExternalID
	}
	if update.URL != nil {
		p.URL = *update.URL
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}
