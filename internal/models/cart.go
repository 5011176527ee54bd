package models

import "strconv"

// CartItem represents an item in the shopping cart
type CartItem struct {
	ProductID   string      `json:"product_id"`
	Name        string      `json:"name"`
	Price       string      `json:"price"` // decimal string
	Currency    string      `json:"currency"`
	Category    string      `json:"category,omitempty"`
	ProductType ProductType `json:"product_type"`
	ImageURL    string      `json:"image_url,omitempty"`
	Quantity    int         `json:"quantity"` // always >= 1
}

// Subtotal returns price * quantity for the item. A price that does not
// parse as a decimal number contributes zero rather than poisoning the
// cart total.
func (i CartItem) Subtotal() float64 {
	price, err := strconv.ParseFloat(i.Price, 64)
	if err != nil {
		return 0
	}
	return price * float64(i.Quantity)
}
