// Package ledger is the append-only order collection. Orders are
// created once from a cart snapshot; afterwards only their status
// moves.
package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/foodipy/foodipy/internal/cart"
	"github.com/foodipy/foodipy/internal/directory"
	"github.com/foodipy/foodipy/internal/store"
	"github.com/foodipy/foodipy/pkg/collection"
	"github.com/foodipy/foodipy/pkg/logger"
)

const ordersKey = "foodipy_orders"

var (
	// ErrEmptyCart signals a checkout attempted with nothing in the cart.
	ErrEmptyCart = errors.New("ledger: cart is empty")

	// ErrNotFound signals an unknown order id.
	ErrNotFound = errors.New("ledger: order not found")
)

// Ledger owns the orders collection in the record store.
type Ledger struct {
	store store.Driver
}

func New(s store.Driver) *Ledger {
	return &Ledger{store: s}
}

func (l *Ledger) load() []Order {
	return store.LoadCollection[Order](l.store, ordersKey)
}

func (l *Ledger) save(orders []Order) error {
	return store.SaveCollection(l.store, ordersKey, orders)
}

// Create appends a new order snapshotted from the given cart items.
// Total is the plain sum of price × quantity; tax and delivery fees are
// display math and never persisted. Status starts at pending whatever
// the payment method says.
func (l *Ledger) Create(items []cart.Item, user directory.User, payment PaymentInfo) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	snapshot := make([]cart.Item, len(items))
	copy(snapshot, items)

	order := Order{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Items:  snapshot,
		Total: collection.Reduce(snapshot, 0.0, func(sum float64, it cart.Item) float64 {
			return sum + it.Price*float64(it.Quantity)
		}),
		Status:    StatusPending,
		Payment:   payment,
		CreatedAt: time.Now().UTC(),
	}

	if err := l.save(append(l.load(), order)); err != nil {
		return Order{}, err
	}
	logger.Info("order placed", "order_id", order.ID, "user_id", order.UserID, "total", order.Total)
	return order, nil
}

// List returns every order, or only those of one user when userID is
// non-empty. An empty result is not an error.
func (l *Ledger) List(userID string) []Order {
	orders := l.load()
	if userID == "" {
		return orders
	}
	return collection.Filter(orders, func(o Order) bool { return o.UserID == userID })
}

// FindByID looks up an order by id.
func (l *Ledger) FindByID(id string) (Order, bool) {
	return collection.First(l.load(), func(o Order) bool { return o.ID == id })
}

// UpdateStatus sets an order's status unconditionally; any status may
// overwrite any other. Unknown ids return ErrNotFound and leave the
// ledger untouched.
func (l *Ledger) UpdateStatus(orderID, status string) (Order, error) {
	orders := l.load()
	idx := collection.IndexOf(orders, func(o Order) bool { return o.ID == orderID })
	if idx == -1 {
		return Order{}, ErrNotFound
	}

	orders[idx].Status = status
	if err := l.save(orders); err != nil {
		return Order{}, err
	}
	return orders[idx], nil
}
