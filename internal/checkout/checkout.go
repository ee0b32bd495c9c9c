package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	cartdomain "github.com/maricoIR/HengamGallery/internal/cart/domain"
	"github.com/maricoIR/HengamGallery/internal/events"
	"github.com/maricoIR/HengamGallery/internal/orders/domain"
	"github.com/maricoIR/HengamGallery/internal/orders/repository"
)

// Orders above this total ship for free.
const (
	FreeShippingThreshold int64 = 50000000
	FlatShippingCost      int64 = 5000000
)

var (
	ErrEmptyCart   = errors.New("cart is empty, nothing to checkout")
	ErrInvalidForm = errors.New("checkout form is invalid")
)

// ShippingCost returns the shipping charge for a cart total.
func ShippingCost(total int64) int64 {
	if total > FreeShippingThreshold {
		return 0
	}
	return FlatShippingCost
}

// FinalTotal is the cart total plus shipping.
func FinalTotal(total int64) int64 {
	return total + ShippingCost(total)
}

// Cart is the slice of the cart service checkout needs.
type Cart interface {
	Snapshot() cartdomain.Cart
	Clear(ctx context.Context)
}

type Service struct {
	cart   Cart
	orders repository.OrderRepository
	pub    events.Publisher
}

func NewService(cart Cart, orders repository.OrderRepository, pub events.Publisher) *Service {
	return &Service{cart: cart, orders: orders, pub: pub}
}

// PlaceOrder validates the form, snapshots the cart into an order, stores
// it and clears the cart. The cart is only cleared once the order is
// safely stored.
func (s *Service) PlaceOrder(ctx context.Context, userID int64, form Form) (*domain.Order, error) {
	if errs := Validate(form); len(errs) > 0 {
		return nil, ErrInvalidForm
	}

	cart := s.cart.Snapshot()
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := make([]domain.OrderItem, len(cart.Lines))
	for i, line := range cart.Lines {
		items[i] = domain.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.NameFa,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
			Subtotal:    int64(line.Quantity) * line.Product.Price,
		}
	}

	order := &domain.Order{
		ID:           uuid.New(),
		UserID:       userID,
		Status:       domain.OrderStatusRegistered,
		Items:        items,
		TotalAmount:  cart.TotalPrice,
		ShippingCost: ShippingCost(cart.TotalPrice),
		FinalAmount:  FinalTotal(cart.TotalPrice),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	s.publishPlaced(ctx, order)
	s.cart.Clear(ctx)
	return order, nil
}

func (s *Service) publishPlaced(ctx context.Context, order *domain.Order) {
	payload, err := json.Marshal(order)
	if err != nil {
		log.Printf("order payload marshal error: %v", err)
		return
	}
	if err := s.pub.Publish(ctx, events.Event{
		Type:    events.TypeOrderPlaced,
		Key:     order.ID.String(),
		Payload: payload,
	}); err != nil {
		log.Printf("order event publish error: %v", err)
	}
}
