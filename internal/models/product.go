package models

import (
	"errors"
	"strconv"
	"strings"
)

// ProductType represents the kind of shop product
type ProductType string

const (
	ProductMerch   ProductType = "merch"
	ProductVinyl   ProductType = "vinyl"
	ProductDigital ProductType = "digital"
	ProductTicket  ProductType = "ticket"
)

// Product represents a purchasable item in the shop
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Price       string      `json:"price"` // decimal string, e.g. "24.99"
	Currency    string      `json:"currency"`
	Category    string      `json:"category,omitempty"`
	ProductType ProductType `json:"product_type"`
	ImageURL    string      `json:"image_url,omitempty"`
}

// Validate validates the product data
func (p *Product) Validate() error {
	if err := validateProductName(p.Name); err != nil {
		return err
	}

	if err := validateProductPrice(p.Price); err != nil {
		return err
	}

	if err := validateProductType(p.ProductType); err != nil {
		return err
	}

	return nil
}

// validateProductName validates a product name
func validateProductName(name string) error {
	if name == "" {
		return errors.New("product name is required")
	}

	if len(name) > 255 {
		return errors.New("product name must be less than 255 characters")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("product name cannot be only whitespace")
	}

	return nil
}

// validateProductPrice validates a product price
func validateProductPrice(price string) error {
	if price == "" {
		return errors.New("product price is required")
	}

	value, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return errors.New("product price must be a decimal number")
	}

	if value < 0 {
		return errors.New("product price cannot be negative")
	}

	return nil
}

// validateProductType validates a product type
func validateProductType(productType ProductType) error {
	switch productType {
	case ProductMerch, ProductVinyl, ProductDigital, ProductTicket:
		return nil
	default:
		return errors.New("invalid product type")
	}
}

// PriceValue returns the numeric price, or 0 when the price string is
// not parsable
func (p *Product) PriceValue() float64 {
	value, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return 0
	}
	return value
}
