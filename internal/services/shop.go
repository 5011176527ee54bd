package services

import (
	"fmt"

	"izuran/internal/models"
)

// ProductRepository interface for shop catalog data
type ProductRepository interface {
	List(category string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
}

// ShopService handles shop catalog business logic
type ShopService struct {
	productRepo ProductRepository
}

// NewShopService creates a new shop service
func NewShopService(productRepo ProductRepository) *ShopService {
	return &ShopService{productRepo: productRepo}
}

// ListProducts returns shop products, optionally filtered by category
func (s *ShopService) ListProducts(category string) ([]models.Product, error) {
	products, err := s.productRepo.List(category)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns a single product
func (s *ShopService) GetProduct(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	return product, nil
}
