package models

// OrderStatus is the lifecycle state of a purchase order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderDelivered  OrderStatus = "delivered"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	return s == OrderPending || s == OrderProcessing || s == OrderDelivered
}

// String returns the underlying string value.
func (s OrderStatus) String() string {
	return string(s)
}

// Order is one purchase order placed with a supplier. The orders screen is
// read-only in this deployment; orders are fixture data.
type Order struct {
	ID       string
	Supplier string
	Items    []string
	Status   OrderStatus
	Date     string // calendar date, YYYY-MM-DD
}

// SeedOrders returns the fixture purchase orders the screen is booted with.
func SeedOrders() []Order {
	return []Order{
		{ID: "1", Supplier: "Dairy Fresh Co.", Items: []string{"Mozzarella Cheese"}, Status: OrderDelivered, Date: "2024-01-15"},
		{ID: "2", Supplier: "PackPro Inc.", Items: []string{"Pizza Boxes (Large)"}, Status: OrderProcessing, Date: "2024-01-16"},
		{ID: "3", Supplier: "Meat Masters", Items: []string{"Pepperoni", "Sausage"}, Status: OrderPending, Date: "2024-01-17"},
	}
}
