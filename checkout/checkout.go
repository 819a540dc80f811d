package checkout

import (
	"context"
	"errors"
	"fmt"

	"go-restaurant-ordering/cart"
	"go-restaurant-ordering/models"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidOrderType = errors.New("order type must be delivery or pickup")
	ErrInvalidPayment   = errors.New("payment method must be card or cash")
)

// MissingFieldError reports a required contact or address field the caller
// left blank. It is detected before any external call is made.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// OrderCreator is the order persistence collaborator. It assigns the
// authoritative order id and timestamps and returns the created record.
type OrderCreator interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
}

// SubmitRequest is the customer-supplied half of an order.
type SubmitRequest struct {
	Name          string                  `json:"name"`
	Phone         string                  `json:"phone"`
	Email         string                  `json:"email"`
	OrderType     string                  `json:"order_type"`
	PaymentMethod string                  `json:"payment_method"`
	Address       *models.DeliveryAddress `json:"address"`
	Notes         string                  `json:"notes"`
}

// Service assembles and submits orders.
type Service struct {
	cfg    Config
	orders OrderCreator
}

func NewService(cfg Config, orders OrderCreator) *Service {
	return &Service{cfg: cfg, orders: orders}
}

// Quote prices the current cart contents for the given order type.
func (s *Service) Quote(store *cart.Store, orderType string) (Totals, error) {
	if orderType != models.OrderTypeDelivery && orderType != models.OrderTypePickup {
		return Totals{}, ErrInvalidOrderType
	}
	return s.cfg.Quote(store.Items(), orderType).Round(), nil
}

// Submit places the order built from the cart and req. The cart contents
// are snapshotted before any external call, so mutations racing with the
// submission cannot corrupt the in-transit payload. The cart is cleared
// only after the collaborator accepts the order; on any error it is left
// intact and the submission can be retried.
func (s *Service) Submit(ctx context.Context, store *cart.Store, req SubmitRequest) (models.Order, error) {
	items := store.Items()
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	if err := validate(req); err != nil {
		return models.Order{}, err
	}

	totals := s.cfg.Quote(items, req.OrderType).Round()

	order := models.Order{
		Customer_name:  &req.Name,
		Customer_phone: &req.Phone,
		Items:          flatten(items),
		Subtotal:       totals.Subtotal.InexactFloat64(),
		Tax:            totals.Tax.InexactFloat64(),
		Delivery_fee:   totals.DeliveryFee.InexactFloat64(),
		Total:          totals.Total.InexactFloat64(),
		Payment_method: &req.PaymentMethod,
		Order_type:     &req.OrderType,
	}
	if req.Email != "" {
		order.Customer_email = &req.Email
	}
	if req.OrderType == models.OrderTypeDelivery {
		order.Delivery_address = req.Address
	}
	if req.Notes != "" {
		order.Notes = &req.Notes
	}

	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return models.Order{}, err
	}

	store.ClearCart()
	return created, nil
}

func validate(req SubmitRequest) error {
	if req.OrderType != models.OrderTypeDelivery && req.OrderType != models.OrderTypePickup {
		return ErrInvalidOrderType
	}
	if req.PaymentMethod != models.PaymentMethodCard && req.PaymentMethod != models.PaymentMethodCash {
		return ErrInvalidPayment
	}
	if req.Name == "" {
		return &MissingFieldError{Field: "name"}
	}
	if req.Phone == "" {
		return &MissingFieldError{Field: "phone"}
	}
	if req.OrderType == models.OrderTypeDelivery {
		if req.Address == nil || req.Address.Street == "" {
			return &MissingFieldError{Field: "street"}
		}
		if req.Address.City == "" {
			return &MissingFieldError{Field: "city"}
		}
		if req.Address.Zip_code == "" {
			return &MissingFieldError{Field: "zip_code"}
		}
	}
	return nil
}

// flatten converts cart lines into the persisted order item shape.
func flatten(items []models.CartItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, line := range items {
		out = append(out, models.OrderItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
			Add_ons:  line.Add_ons,
		})
	}
	return out
}
