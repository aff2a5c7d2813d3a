package entity

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the state every freshly created order starts in.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing indicates the order is being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped indicates the order left the warehouse.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered is a terminal state.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled is a terminal state reachable from any
	// non-terminal state.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is one of the five enum values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is expected out of s.
// Status updates are deliberately not restricted by a transition table
// (any valid enum value is accepted by UpdateStatus); this predicate is
// the single place to hang stricter lifecycle rules on later.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Order belongs to exactly one user. Delivery fields and TotalAmount are
// snapshotted at creation time and never recomputed later.
type Order struct {
	ID              uint
	UserID          uint
	Status          OrderStatus
	DeliveryAddress string
	DeliveryCity    string
	DeliveryPhone   string
	PaymentMethod   string // Free-text, not an enum.
	Notes           string
	TotalAmount     int64
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem snapshots ProductName and Price at order time so historical
// orders stay stable when the catalog is edited or a product is deleted.
// Order items never reference live catalog pricing.
type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   uint
	ProductName string
	Price       int64
	Quantity    int
	CreatedAt   time.Time
}
