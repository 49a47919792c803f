// Package app assembles the storefront. Every component lives here as
// an explicit field, constructed once at startup and torn down by
// Close; nothing is resolved through globals.
package app

import (
	"fmt"

	"github.com/foodipy/foodipy/config"
	"github.com/foodipy/foodipy/internal/cart"
	"github.com/foodipy/foodipy/internal/catalog"
	"github.com/foodipy/foodipy/internal/checkout"
	"github.com/foodipy/foodipy/internal/directory"
	"github.com/foodipy/foodipy/internal/ledger"
	"github.com/foodipy/foodipy/internal/session"
	"github.com/foodipy/foodipy/internal/store"
	"github.com/foodipy/foodipy/pkg/logger"
)

// App is the assembled storefront: one record store and the components
// on top of it. UI code receives an *App and calls into its fields; no
// component reaches for globals.
type App struct {
	Store    store.Driver
	Users    *directory.Directory
	Catalog  *catalog.Catalog
	Orders   *ledger.Ledger
	Session  *session.Manager
	Cart     *cart.Cart
	Checkout *checkout.Service
}

// New builds the app against the configured store driver.
func New() (*App, error) {
	driver, err := store.Open()
	if err != nil {
		return nil, err
	}
	return NewWithStore(driver)
}

// NewWithStore builds the app against an explicit driver. Tests use
// this with a memory store.
func NewWithStore(driver store.Driver) (*App, error) {
	users := directory.New(driver)
	if err := users.EnsureBootstrapAdmin(); err != nil {
		return nil, fmt.Errorf("app: bootstrap admin: %w", err)
	}

	sess := session.New(driver, users)
	sess.Hydrate()

	basket := cart.New()
	orders := ledger.New(driver)

	a := &App{
		Store:    driver,
		Users:    users,
		Catalog:  catalog.New(driver),
		Orders:   orders,
		Session:  sess,
		Cart:     basket,
		Checkout: checkout.New(basket, sess, orders),
	}

	logger.Debug("app ready", "store_driver", config.StoreDriver())
	return a, nil
}

// Close releases the store driver's external connections, if any.
func (a *App) Close() error {
	if c, ok := a.Store.(store.Closer); ok {
		return c.Close()
	}
	return nil
}
