package models

import "github.com/shopspring/decimal"

// OrderStatus is the small positive integer enum the backend assigns to
// an order's fulfilment state.
type OrderStatus int

const (
	OrderStatusNew       OrderStatus = 1
	OrderStatusConfirmed OrderStatus = 2
	OrderStatusShipping  OrderStatus = 3
	OrderStatusCompleted OrderStatus = 4
	OrderStatusPaid      OrderStatus = 5
	OrderStatusClosed    OrderStatus = 6
	OrderStatusRejected  OrderStatus = 7
)

// Label returns the display name for the status, or an empty string for
// values the backend has not defined.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusNew:
		return "New"
	case OrderStatusConfirmed:
		return "Confirmed"
	case OrderStatusShipping:
		return "Shipping"
	case OrderStatusCompleted:
		return "Completed"
	case OrderStatusPaid:
		return "Paid"
	case OrderStatusClosed:
		return "Closed"
	case OrderStatusRejected:
		return "Rejected"
	default:
		return ""
	}
}

// Order is a customer purchase. SerialNumber is immutable after creation.
// Username is denormalized from the owning user. OrderDetails are loaded
// with the parent on GetByID and deleted individually by their own id.
type Order struct {
	OrderID      int             `json:"order_id"`
	SerialNumber string          `json:"serial_number"`
	UserID       int             `json:"user_id"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Status       OrderStatus     `json:"status"`
	Note         string          `json:"note"`
	Username     string          `json:"username"`
	OrderAt      string          `json:"order_at,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
	UpdatedAt    string          `json:"updated_at,omitempty"`
	OrderDetails []OrderDetail   `json:"order_details,omitempty"`
}

// OrderDetail is one line of an order.
type OrderDetail struct {
	OrderDetailID int             `json:"order_detail_id"`
	OrderID       int             `json:"order_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	SubTotalPrice decimal.Decimal `json:"sub_total_price"`
}
