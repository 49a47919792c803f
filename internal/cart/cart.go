// Package cart is the in-memory shopping cart. It is never persisted:
// a cart belongs to one interactive session and is gone when that
// session ends.
package cart

import (
	"github.com/foodipy/foodipy/internal/catalog"
	"github.com/foodipy/foodipy/pkg/collection"
)

// Item is a product selection with a quantity. The product fields are a
// copy, so the cart (and any order snapshotted from it) is immune to
// later catalog edits.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Cart holds the current selection.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts a product in the cart. Adding a product already present
// bumps its quantity by one instead of adding a second line.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
}

// Remove drops the line with the given product id entirely.
func (c *Cart) Remove(productID string) {
	c.items = collection.Reject(c.items, func(it Item) bool { return it.ID == productID })
}

// SetQuantity sets a line's quantity, clamped to at least 1. Dropping
// to zero never removes the line; that is what Remove is for.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Items returns a snapshot copy of the current lines.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems sums the quantities across all lines.
func (c *Cart) TotalItems() int {
	return collection.Reduce(c.items, 0, func(sum int, it Item) int {
		return sum + it.Quantity
	})
}

// TotalPrice sums price × quantity across all lines.
func (c *Cart) TotalPrice() float64 {
	return collection.Reduce(c.items, 0.0, func(sum float64, it Item) float64 {
		return sum + it.Price*float64(it.Quantity)
	})
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
