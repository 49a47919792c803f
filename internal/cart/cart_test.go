package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodipy/foodipy/internal/cart"
	"github.com/foodipy/foodipy/internal/catalog"
)

var (
	pizza = catalog.Product{ID: "p1", Name: "Margherita Pizza", Price: 299, InStock: true}
	cake  = catalog.Product{ID: "p2", Name: "Chocolate Cake", Price: 199, InStock: true}
)

func TestAddSameProductBumpsQuantity(t *testing.T) {
	c := cart.New()
	c.Add(pizza)
	c.Add(pizza)

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, c.TotalItems())
}

func TestAddDistinctProducts(t *testing.T) {
	c := cart.New()
	c.Add(pizza)
	c.Add(cake)

	assert.Len(t, c.Items(), 2)
	assert.Equal(t, 2, c.TotalItems())
	assert.InDelta(t, 498.0, c.TotalPrice(), 1e-9)
}

func TestSetQuantityClampsToOne(t *testing.T) {
	c := cart.New()
	c.Add(pizza)

	c.SetQuantity(pizza.ID, 0)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.SetQuantity(pizza.ID, -3)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.SetQuantity(pizza.ID, 4)
	assert.Equal(t, 4, c.Items()[0].Quantity)
}

func TestSetQuantityUnknownProductIsNoOp(t *testing.T) {
	c := cart.New()
	c.Add(pizza)
	c.SetQuantity("nope", 5)

	assert.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.TotalItems())
}

func TestRemove(t *testing.T) {
	c := cart.New()
	c.Add(pizza)
	c.Add(cake)

	c.Remove(pizza.ID)
	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, cake.ID, items[0].ID)

	c.Remove("nope")
	assert.Len(t, c.Items(), 1)
}

func TestClear(t *testing.T) {
	c := cart.New()
	assert.True(t, c.IsEmpty())

	c.Add(pizza)
	assert.False(t, c.IsEmpty())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.TotalItems())
	assert.Zero(t, c.TotalPrice())
}

func TestItemsReturnsSnapshot(t *testing.T) {
	c := cart.New()
	c.Add(pizza)

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestTotalPriceMultipliesQuantity(t *testing.T) {
	c := cart.New()
	c.Add(pizza)
	c.Add(pizza)
	c.Add(cake)

	assert.InDelta(t, 299*2+199, c.TotalPrice(), 1e-9)
}
