package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderStatusNew            = "new"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

type DeliveryAddress struct {
	Street   string  `json:"street"`
	City     string  `json:"city"`
	Zip_code string  `json:"zip_code"`
	Notes    *string `json:"notes,omitempty"`
}

// OrderItem is the flattened form a cart line takes inside a persisted
// order: name, quantity and unit price, plus any add-ons.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Add_ons  []AddOn `json:"add_ons,omitempty"`
}

type Order struct {
	ID               primitive.ObjectID `bson:"_id"`
	Order_id         string             `json:"order_id"`
	Customer_name    *string            `json:"customer_name" validate:"required,min=2,max=100"`
	Customer_phone   *string            `json:"customer_phone" validate:"required"`
	Customer_email   *string            `json:"customer_email"`
	Items            []OrderItem        `json:"items" validate:"required,min=1"`
	Subtotal         float64            `json:"subtotal"`
	Tax              float64            `json:"tax"`
	Delivery_fee     float64            `json:"delivery_fee"`
	Total            float64            `json:"total"`
	Payment_method   *string            `json:"payment_method" validate:"required,eq=card|eq=cash"`
	Order_type       *string            `json:"order_type" validate:"required,eq=delivery|eq=pickup"`
	Delivery_address *DeliveryAddress   `json:"delivery_address,omitempty"`
	Status           *string            `json:"status" validate:"required,eq=new|eq=preparing|eq=ready|eq=out_for_delivery|eq=delivered|eq=cancelled"`
	Notes            *string            `json:"notes,omitempty"`
	Placed_at        time.Time          `json:"placed_at"`
	Updated_at       time.Time          `json:"updated_at"`
}
