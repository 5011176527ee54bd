// Package cart implements the shopping cart as an explicit reducer:
// a pure state-transition function over cart actions, with persistence
// and user notifications handled by the Engine as subscribers observing
// transitions.
package cart

import (
	"izuran/internal/models"
)

// State holds the full cart contents. States are treated as immutable:
// Reduce returns a fresh State and never mutates its input.
type State struct {
	Items []models.CartItem `json:"items"`
}

// Action is a cart state transition request
type Action interface {
	isAction()
}

// Add appends the product to the cart, or increments its quantity by 1
// when it is already present
type Add struct {
	Product models.Product
}

// Remove deletes the item with the given product id; absent ids are a
// no-op
type Remove struct {
	ProductID string
}

// UpdateQuantity sets an item's quantity. Quantities below 1 are
// silently ignored: this is a deliberate guard against zero/negative
// states, not an error. Removal is the only way to eliminate an item.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// Clear empties the cart unconditionally
type Clear struct{}

// Reorder moves the item at ActiveID's position to OverID's position
// (array move, not swap), preserving all other relative order. Unknown
// ids are a no-op.
type Reorder struct {
	ActiveID string
	OverID   string
}

func (Add) isAction()            {}
func (Remove) isAction()         {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()          {}
func (Reorder) isAction()        {}

// Reduce applies an action to the cart state and returns the new state.
// Pure: no I/O, no mutation of the input.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case Add:
		return reduceAdd(state, a)
	case Remove:
		return reduceRemove(state, a)
	case UpdateQuantity:
		return reduceUpdateQuantity(state, a)
	case Clear:
		return State{Items: []models.CartItem{}}
	case Reorder:
		return reduceReorder(state, a)
	default:
		return state
	}
}

func reduceAdd(state State, a Add) State {
	items := cloneItems(state.Items)

	for i := range items {
		if items[i].ProductID == a.Product.ID {
			items[i].Quantity++
			return State{Items: items}
		}
	}

	items = append(items, models.CartItem{
		ProductID:   a.Product.ID,
		Name:        a.Product.Name,
		Price:       a.Product.Price,
		Currency:    a.Product.Currency,
		Category:    a.Product.Category,
		ProductType: a.Product.ProductType,
		ImageURL:    a.Product.ImageURL,
		Quantity:    1,
	})

	return State{Items: items}
}

func reduceRemove(state State, a Remove) State {
	items := make([]models.CartItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item.ProductID != a.ProductID {
			items = append(items, item)
		}
	}
	return State{Items: items}
}

func reduceUpdateQuantity(state State, a UpdateQuantity) State {
	if a.Quantity < 1 {
		return state
	}

	items := cloneItems(state.Items)
	for i := range items {
		if items[i].ProductID == a.ProductID {
			items[i].Quantity = a.Quantity
			break
		}
	}
	return State{Items: items}
}

func reduceReorder(state State, a Reorder) State {
	from := indexOf(state.Items, a.ActiveID)
	to := indexOf(state.Items, a.OverID)
	if from < 0 || to < 0 {
		return state
	}

	items := cloneItems(state.Items)
	moved := items[from]
	items = append(items[:from], items[from+1:]...)

	tail := append([]models.CartItem{moved}, items[to:]...)
	items = append(items[:to], tail...)

	return State{Items: items}
}

func indexOf(items []models.CartItem, productID string) int {
	for i, item := range items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func cloneItems(items []models.CartItem) []models.CartItem {
	cloned := make([]models.CartItem, len(items))
	copy(cloned, items)
	return cloned
}

// Count returns the sum of all item quantities
func (s State) Count() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of price * quantity over all items. Items with
// unparsable prices contribute zero.
func (s State) Total() float64 {
	total := 0.0
	for _, item := range s.Items {
		total += item.Subtotal()
	}
	return total
}

// Currency returns the currency of the cart, taken from the first item
func (s State) Currency() string {
	if len(s.Items) == 0 {
		return ""
	}
	return s.Items[0].Currency
}

// Find returns the item with the given product id, or nil
func (s State) Find(productID string) *models.CartItem {
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			return &s.Items[i]
		}
	}
	return nil
}
