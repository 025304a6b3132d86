package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/abdo0vuln/e-commerce/internal/domain"
	"github.com/abdo0vuln/e-commerce/internal/events"
	"github.com/abdo0vuln/e-commerce/internal/repository"
)

const (
	freeShippingOver = 10000
	shippingFlatRate = 500
)

var (
	ErrForbidden     = errors.New("access to this order is forbidden")
	ErrInvalidStatus = errors.New("invalid order status")
)

type PlaceOrderInput struct {
	Items           []domain.OrderItem
	Subtotal        float64
	Discount        float64
	PaymentMethod   string
	ShippingAddress domain.Address
	Notes           string
}

type PlacedOrder struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

type OrderService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	catalog   *CatalogService
	publisher events.Publisher
}

func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, catalog *CatalogService, publisher events.Publisher) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		catalog:   catalog,
		publisher: publisher,
	}
}

// ComputeShipping is the flat-rate rule: free over the threshold,
// otherwise 500. Exactly at the threshold still pays.
func ComputeShipping(subtotal float64) float64 {
	if subtotal > freeShippingOver {
		return 0
	}
	return shippingFlatRate
}

// PlaceOrder persists the order then decrements stock per line item.
//
// The order number is minted from the current order count, which two
// concurrent checkouts can observe identically; the stock decrement is
// unconditional and can drive stock negative. Both behaviors are kept
// deliberately: there is no transaction spanning the insert and the
// decrements, and no compensation if a decrement fails after the order
// is committed.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, input PlaceOrderInput) (*PlacedOrder, error) {
	shipping := ComputeShipping(input.Subtotal)
	total := input.Subtotal + shipping - input.Discount

	count, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	orderNumber := fmt.Sprintf("ORD-%06d", count+1)

	order := &domain.Order{
		UserID:          userID,
		OrderNumber:     orderNumber,
		Items:           input.Items,
		Subtotal:        input.Subtotal,
		Shipping:        shipping,
		Discount:        input.Discount,
		Total:           total,
		Status:          domain.OrderStatusPending,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
	}

	orderID, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	for _, item := range order.Items {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			return nil, fmt.Errorf("order %s committed but stock decrement failed for product %s: %w",
				orderNumber, item.ProductID, err)
		}
	}

	if s.catalog != nil {
		s.catalog.invalidateListings()
	}
	s.publish(events.EventOrderPlaced, order)

	return &PlacedOrder{OrderID: orderID, OrderNumber: orderNumber}, nil
}

// ListOrders returns the caller's orders; admins see everyone's.
func (s *OrderService) ListOrders(ctx context.Context, userID, role string, filter repository.OrderFilter) ([]domain.Order, domain.Pagination, error) {
	if role != domain.RoleAdmin {
		filter.UserID = userID
	}

	orders, total, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return orders, domain.NewPagination(filter.Page, filter.Limit, total), nil
}

func (s *OrderService) GetOrder(ctx context.Context, userID, role, orderID string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && order.UserID != userID {
		return nil, ErrForbidden
	}
	return order, nil
}

// UpdateOrder changes order and/or payment status. Admin only, enforced
// at the boundary.
func (s *OrderService) UpdateOrder(ctx context.Context, orderID, status, paymentStatus string) error {
	if status != "" && !domain.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	if paymentStatus != "" && !domain.ValidPaymentStatus(paymentStatus) {
		return ErrInvalidStatus
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status, paymentStatus); err != nil {
		return err
	}

	if order, err := s.orders.FindByID(ctx, orderID); err == nil {
		s.publish(events.EventOrderStatusChanged, order)
	}
	return nil
}

func (s *OrderService) publish(eventType string, order *domain.Order) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.publisher.Publish(ctx, eventType, order); err != nil {
			log.Printf("failed to publish %s for order %s: %v", eventType, order.OrderNumber, err)
		}
	}()
}
