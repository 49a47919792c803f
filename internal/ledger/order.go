package ledger

import (
	"time"

	"github.com/foodipy/foodipy/internal/cart"
)

// Order statuses. The ledger does not enforce a transition graph:
// admin actions may move an order between any two statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Statuses lists every status an order may carry, for input coercion
// at the edges.
var Statuses = []string{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}

// IsValidStatus reports whether s is a known order status.
func IsValidStatus(s string) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// PaymentInfo describes the simulated payment attached to an order.
type PaymentInfo struct {
	Method        string `json:"method"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId,omitempty"`
	Note          string `json:"note,omitempty"`
}

// Order is an immutable snapshot of a checkout. Items are copies of the
// cart lines at creation time; Total is the pre-tax, pre-delivery
// subtotal. Status is the only field that ever changes afterwards, and
// orders are never deleted.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []cart.Item `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	Payment   PaymentInfo `json:"paymentInfo"`
	CreatedAt time.Time   `json:"createdAt"`
}
