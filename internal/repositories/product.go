package repositories

import (
	"fmt"

	"izuran/internal/models"
)

// ProductRepository serves the shop catalog
type ProductRepository struct {
	products []models.Product
}

// NewProductRepository loads products from products.json in the data
// directory
func NewProductRepository(dataDir string) (*ProductRepository, error) {
	var products []models.Product
	if err := loadJSON(dataDir, "products.json", &products); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	return &ProductRepository{products: products}, nil
}

// List returns all shop products, optionally filtered by category
func (r *ProductRepository) List(category string) ([]models.Product, error) {
	var products []models.Product
	for _, product := range r.products {
		if category == "" || product.Category == category {
			products = append(products, product)
		}
	}
	return products, nil
}

// GetByID returns the product with the given id
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product %q: %w", id, models.ErrNotFound)
}
