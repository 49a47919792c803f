package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodipy/foodipy/internal/app"
	"github.com/foodipy/foodipy/internal/checkout"
	"github.com/foodipy/foodipy/internal/directory"
	"github.com/foodipy/foodipy/internal/ledger"
	"github.com/foodipy/foodipy/internal/store"
)

func newApp(t *testing.T) (*app.App, store.Driver) {
	t.Helper()
	d := store.NewMemory()
	a, err := app.NewWithStore(d)
	require.NoError(t, err)
	return a, d
}

func TestNewEnsuresBootstrapAdmin(t *testing.T) {
	a, _ := newApp(t)

	admin, ok := a.Users.FindByEmail(directory.AdminEmail)
	require.True(t, ok)
	assert.True(t, admin.IsAdmin())

	_, err := a.Session.Login(directory.AdminEmail, "admin123")
	require.NoError(t, err)
	assert.True(t, a.Session.IsAdmin())
}

func TestShoppingFlow(t *testing.T) {
	a, _ := newApp(t)

	_, err := a.Session.Register(directory.RegisterInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	menu := a.Catalog.List()
	require.Len(t, menu, 9)

	a.Cart.Add(menu[0])
	a.Cart.Add(menu[0])
	a.Cart.Add(menu[1])
	require.Equal(t, 3, a.Cart.TotalItems())

	order, err := a.Checkout.PlaceOrder(checkout.MethodCOD)
	require.NoError(t, err)

	assert.Equal(t, ledger.StatusPending, order.Status)
	assert.InDelta(t, menu[0].Price*2+menu[1].Price, order.Total, 1e-9)
	assert.True(t, a.Cart.IsEmpty())

	user, _ := a.Session.Current()
	history := a.Orders.List(user.ID)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestStateSurvivesRebuild(t *testing.T) {
	a, d := newApp(t)

	_, err := a.Session.Register(directory.RegisterInput{
		Name: "Asha Rao", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	menu := a.Catalog.List()
	a.Cart.Add(menu[0])
	order, err := a.Checkout.PlaceOrder(checkout.MethodCOD)
	require.NoError(t, err)

	// Same store, fresh app: users, orders and session come back, the
	// cart does not.
	next, err := app.NewWithStore(d)
	require.NoError(t, err)

	current, ok := next.Session.Current()
	require.True(t, ok)
	assert.Equal(t, "asha@example.com", current.Email)

	_, ok = next.Orders.FindByID(order.ID)
	assert.True(t, ok)
	assert.True(t, next.Cart.IsEmpty())
}

func TestCloseIsSafeWithoutCloser(t *testing.T) {
	a, _ := newApp(t)
	assert.NoError(t, a.Close())
}
