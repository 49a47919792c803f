// Package checkout turns the current cart into an order. Payment is a
// cosmetic simulation: non-cash methods get a made-up transaction id
// and a fixed processing pause, nothing more.
package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/foodipy/foodipy/internal/cart"
	"github.com/foodipy/foodipy/internal/ledger"
	"github.com/foodipy/foodipy/internal/session"
	"github.com/foodipy/foodipy/pkg/logger"
)

// Payment methods.
const (
	MethodCOD  = "cod"
	MethodUPI  = "upi"
	MethodCard = "card"
)

// Methods lists the accepted payment methods, for input coercion at
// the edges.
var Methods = []string{MethodCOD, MethodUPI, MethodCard}

// Display-only pricing. Applied on top of the cart subtotal for the
// order summary; the persisted order total stays pre-tax,
// pre-delivery.
const (
	taxRate     = 0.10
	deliveryFee = 249.0
)

// processingDelay imitates online payment latency. It is a plain
// sleep: not cancellable, no timeout, always completes.
const processingDelay = 1500 * time.Millisecond

var (
	// ErrNotSignedIn signals a checkout without an authenticated user.
	ErrNotSignedIn = errors.New("checkout: sign in to place an order")

	// ErrUnknownMethod signals a payment method outside Methods.
	ErrUnknownMethod = errors.New("checkout: unknown payment method")
)

// Quote is the display breakdown of a cart: subtotal plus the
// presentation-layer surcharges.
type Quote struct {
	Subtotal    float64
	Tax         float64
	DeliveryFee float64
	Total       float64
}

// Service wires the cart, session and ledger into the checkout flow.
type Service struct {
	cart    *cart.Cart
	session *session.Manager
	orders  *ledger.Ledger
}

func New(c *cart.Cart, s *session.Manager, l *ledger.Ledger) *Service {
	return &Service{cart: c, session: s, orders: l}
}

// Quote prices the current cart for display.
func (s *Service) Quote() Quote {
	subtotal := s.cart.TotalPrice()
	tax := subtotal * taxRate
	return Quote{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Total:       subtotal + tax + deliveryFee,
	}
}

// PlaceOrder runs the checkout: simulate the payment, snapshot the
// cart into a new pending order, then clear the cart. The ledger never
// touches the cart itself; clearing is this caller's job.
func (s *Service) PlaceOrder(method string) (ledger.Order, error) {
	user, ok := s.session.Current()
	if !ok {
		return ledger.Order{}, ErrNotSignedIn
	}
	if s.cart.IsEmpty() {
		return ledger.Order{}, ledger.ErrEmptyCart
	}

	payment, err := simulatePayment(method)
	if err != nil {
		return ledger.Order{}, err
	}

	order, err := s.orders.Create(s.cart.Items(), user, payment)
	if err != nil {
		return ledger.Order{}, err
	}

	s.cart.Clear()
	return order, nil
}

func simulatePayment(method string) (ledger.PaymentInfo, error) {
	now := time.Now().UnixMilli()

	var payment ledger.PaymentInfo
	switch method {
	case MethodCOD:
		payment = ledger.PaymentInfo{
			Method: MethodCOD,
			Status: "pending",
			Note:   "Payment on delivery",
		}
	case MethodUPI:
		payment = ledger.PaymentInfo{
			Method:        MethodUPI,
			Status:        "completed",
			TransactionID: fmt.Sprintf("UPI%d", now),
			Note:          "UPI payment processed",
		}
	case MethodCard:
		payment = ledger.PaymentInfo{
			Method:        MethodCard,
			Status:        "completed",
			TransactionID: fmt.Sprintf("CARD%d", now),
			Note:          "Card payment processed",
		}
	default:
		return ledger.PaymentInfo{}, ErrUnknownMethod
	}

	if method != MethodCOD {
		logger.Debug("processing payment", "method", method)
		time.Sleep(processingDelay)
	}
	return payment, nil
}
