// Package catalog is the product listing collection. A fresh store is
// seeded with a fixed default menu; after that, admin operations are
// the only way listings change.
package catalog

import (
	"errors"

	"github.com/google/uuid"

	"github.com/foodipy/foodipy/internal/store"
	"github.com/foodipy/foodipy/pkg/collection"
	"github.com/foodipy/foodipy/pkg/logger"
	"github.com/foodipy/foodipy/pkg/validate"
)

const productsKey = "foodipy_products"

// ErrNotFound signals an unknown product id.
var ErrNotFound = errors.New("catalog: product not found")

// Catalog owns the products collection in the record store.
type Catalog struct {
	store store.Driver
}

func New(s store.Driver) *Catalog {
	return &Catalog{store: s}
}

func (c *Catalog) save(products []Product) error {
	return store.SaveCollection(c.store, productsKey, products)
}

// List returns the stored catalog, seeding and persisting the default
// menu when nothing has been stored yet.
func (c *Catalog) List() []Product {
	if _, err := c.store.Get(productsKey); errors.Is(err, store.ErrNoRecord) {
		seeded := make([]Product, len(defaultProducts))
		copy(seeded, defaultProducts)
		if err := c.save(seeded); err != nil {
			logger.Warn("catalog seed not persisted", "error", err)
		}
		return seeded
	}
	return store.LoadCollection[Product](c.store, productsKey)
}

// FindByID looks up a listing by id.
func (c *Catalog) FindByID(id string) (Product, bool) {
	return collection.First(c.List(), func(p Product) bool { return p.ID == id })
}

// Create adds a listing. No uniqueness beyond the generated id.
func (c *Catalog) Create(in CreateInput) (Product, error) {
	if err := validate.Check(in); err != nil {
		return Product{}, err
	}

	product := Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		InStock:     in.InStock,
	}

	if err := c.save(append(c.List(), product)); err != nil {
		return Product{}, err
	}
	return product, nil
}

// Update merges patch into the listing with the given id.
func (c *Catalog) Update(id string, patch Patch) (Product, error) {
	if err := validate.Check(patch); err != nil {
		return Product{}, err
	}

	products := c.List()
	idx := collection.IndexOf(products, func(p Product) bool { return p.ID == id })
	if idx == -1 {
		return Product{}, ErrNotFound
	}

	product := products[idx]
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Image != nil {
		product.Image = *patch.Image
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.InStock != nil {
		product.InStock = *patch.InStock
	}

	products[idx] = product
	if err := c.save(products); err != nil {
		return Product{}, err
	}
	return product, nil
}

// Delete removes a listing. Unknown ids are a no-op. Orders keep their
// item snapshots either way.
func (c *Catalog) Delete(id string) error {
	products := c.List()
	remaining := collection.Reject(products, func(p Product) bool { return p.ID == id })
	if len(remaining) == len(products) {
		return nil
	}
	return c.save(remaining)
}
