package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID          string             `bson:"user_id" json:"userId"`
	OrderNumber     string             `bson:"order_number" json:"orderNumber"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	Shipping        float64            `bson:"shipping" json:"shipping"`
	Discount        float64            `bson:"discount" json:"discount"`
	Total           float64            `bson:"total" json:"total"`
	Status          string             `bson:"status" json:"status"`
	PaymentMethod   string             `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus   string             `bson:"payment_status" json:"paymentStatus"`
	ShippingAddress Address            `bson:"shipping_address" json:"shippingAddress"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}

// OrderItem is a snapshot of the product at purchase time. Price and
// name are copied in, never recomputed from the product document.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Size      string  `bson:"size,omitempty" json:"size,omitempty"`
	Color     string  `bson:"color,omitempty" json:"color,omitempty"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}
