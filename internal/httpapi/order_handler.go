package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abdo0vuln/e-commerce/internal/auth"
	"github.com/abdo0vuln/e-commerce/internal/domain"
	"github.com/abdo0vuln/e-commerce/internal/repository"
	"github.com/abdo0vuln/e-commerce/internal/service"
)

type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type OrderItemDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Image     string  `json:"image"`
}

type CreateOrderRequestDTO struct {
	Items           []OrderItemDTO `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	Discount        float64        `json:"discount"`
	PaymentMethod   string         `json:"paymentMethod"`
	ShippingAddress domain.Address `json:"shippingAddress"`
	Notes           string         `json:"notes"`
}

type UpdateOrderRequestDTO struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())

	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "order must contain at least one item")
		return
	}
	for _, item := range req.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_item", "every item needs a product id and a positive quantity")
			return
		}
	}
	addr := req.ShippingAddress
	if addr.Street == "" || addr.City == "" || addr.Country == "" {
		respondError(w, http.StatusBadRequest, "invalid_address", "shipping address is incomplete")
		return
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
			Image:     item.Image,
		})
	}

	placed, err := h.orders.PlaceOrder(r.Context(), id.UserID, service.PlaceOrderInput{
		Items:           items,
		Subtotal:        req.Subtotal,
		Discount:        req.Discount,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Order created successfully",
		"orderId":     placed.OrderID,
		"orderNumber": placed.OrderNumber,
	})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())

	filter := repository.OrderFilter{
		Status: r.URL.Query().Get("status"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", defaultPageLimit),
	}

	orders, pagination, err := h.orders.ListOrders(r.Context(), id.UserID, id.Role, filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"orders":     orders,
		"pagination": pagination,
	})
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())

	order, err := h.orders.GetOrder(r.Context(), id.UserID, id.Role, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Status == "" && req.PaymentStatus == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "nothing to update")
		return
	}

	if err := h.orders.UpdateOrder(r.Context(), chi.URLParam(r, "id"), req.Status, req.PaymentStatus); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Order updated successfully"})
}
