package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name        string
		given       string
		when        string
		then        string
		productName string
		price       *float64
		marketplace string
		expectErr   error
	}{
		{
			name:        "Valid product",
			given:       "a name, marketplace and non-negative price",
			when:        "creating a product",
			then:        "should create with generated ID and timestamps",
			productName: "Wireless Mouse",
			price:       floatPtr(29.99),
			marketplace: "Amazon",
			expectErr:   nil,
		},
		{
			name:        "Valid product without price",
			given:       "no price",
			when:        "creating a product",
			then:        "should create with nil price",
			productName: "Mystery Box",
			price:       nil,
			marketplace: "eBay",
			expectErr:   nil,
		},
		{
			name:        "Missing name",
			given:       "an empty name",
			when:        "creating a product",
			then:        "should reject with ErrInvalidName",
			productName: "",
			marketplace: "Amazon",
			expectErr:   ErrInvalidName,
		},
		{
			name:        "Missing marketplace",
			given:       "an empty marketplace",
			when:        "creating a product",
			then:        "should reject with ErrInvalidMarketplace",
			productName: "Wireless Mouse",
			marketplace: "",
			expectErr:   ErrInvalidMarketplace,
		},
		{
			name:        "Negative price",
			given:       "a negative price",
			when:        "creating a product",
			then:        "should reject with ErrNegativePrice",
			productName: "Wireless Mouse",
			price:       floatPtr(-1),
			marketplace: "Amazon",
			expectErr:   ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.productName, "", "", tt.price, tt.marketplace, "", "")

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, product)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, product)
			assert.Equal(t, tt.productName, product.Name)
			assert.Equal(t, tt.marketplace, product.Marketplace)
			assert.False(t, product.CreatedAt.IsZero())
			assert.Equal(t, product.CreatedAt, product.UpdatedAt)
		})
	}
}

func TestProduct_Apply(t *testing.T) {
	t.Run("applies partial update and bumps UpdatedAt", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "ergonomic", "Computer Accessories", floatPtr(29.99), "Amazon", "", "")
		assert.NoError(t, err)
		before := product.UpdatedAt

		newName := "Wireless Mouse Pro"
		newPrice := 39.99
		err = product.Apply(ProductUpdate{Name: &newName, Price: &newPrice})

		assert.NoError(t, err)
		assert.Equal(t, "Wireless Mouse Pro", product.Name)
		assert.Equal(t, 39.99, *product.Price)
		assert.Equal(t, "ergonomic", product.Description)
		assert.False(t, product.UpdatedAt.Before(before))
	})

	t.Run("rejects negative price update", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "", "", nil, "Amazon", "", "")
		assert.NoError(t, err)

		bad := -5.0
		err = product.Apply(ProductUpdate{Price: &bad})

		assert.ErrorIs(t, err, ErrNegativePrice)
		assert.Nil(t, product.Price)
	})

	t.Run("rejects empty name update", func(t *testing.T) {
		product, err := NewProduct("Wireless Mouse", "", "", nil, "Amazon", "", "")
		assert.NoError(t, err)

		empty := ""
		err = product.Apply(ProductUpdate{Name: &empty})

		assert.ErrorIs(t, err, ErrInvalidName)
		assert.Equal(t, "Wireless Mouse", product.Name)
	})
}
