package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"shop-microservices/internal/auth"
	"shop-microservices/internal/order"
)

type CreateOrderRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int64 `json:"quantity" validate:"required"`
}

type UpdateOrderRequest struct {
	UserID    int64  `json:"userId" validate:"required"`
	ProductID int64  `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// OrderResponse is an order row plus the optional catalog snapshot attached
// on creation.
type OrderResponse struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"userId"`
	ProductID int64              `json:"productId"`
	Quantity  int64              `json:"quantity"`
	Status    string             `json:"status"`
	Product   *order.ProductInfo `json:"product,omitempty"`
}

type OrderHandler struct {
	service  order.Service
	validate *validator.Validate
}

func NewOrderHandler(service order.Service) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes wires the order endpoints. Only creation is gated by the
// token middleware; reads, updates and deletes are open.
func (h *OrderHandler) RegisterRoutes(router chi.Router, requireAuth func(http.Handler) http.Handler) {
	router.With(requireAuth).Post("/orders", h.handleCreateOrder)
	router.Get("/orders", h.handleListOrders)
	router.Get("/orders/{id}", h.handleGetOrderByID)
	router.Put("/orders/{id}", h.handleUpdateOrder)
	router.Delete("/orders/{id}", h.handleDeleteOrder)
}

func (h *OrderHandler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		// Only reachable if the route is wired without the middleware.
		respondWithError(w, http.StatusUnauthorized, "Missing authenticated identity")
		return
	}

	var requestPayload CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidationErrors(w, err)
		return
	}

	created, product, err := h.service.CreateOrder(r.Context(),
		identity.UserID, requestPayload.ProductID, requestPayload.Quantity)
	if err != nil {
		if errors.Is(err, order.ErrMissingFields) {
			respondWithError(w, http.StatusBadRequest, "Missing required fields: productId, quantity")
			return
		}
		log.Error().Err(err).Msg("Failed to create order via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to create order")
		return
	}

	respondWithJSON(w, http.StatusCreated, OrderResponse{
		ID:        created.ID,
		UserID:    created.UserID,
		ProductID: created.ProductID,
		Quantity:  created.Quantity,
		Status:    created.Status.String(),
		Product:   product,
	})
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list orders via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to retrieve orders")
		return
	}

	respondWithJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) handleGetOrderByID(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		log.Warn().Str("order_id", idParam).Msg("Failed to parse id parameter from URL")
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	found, err := h.service.GetOrderByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get order via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to retrieve order")
		return
	}

	respondWithJSON(w, http.StatusOK, found)
}

func (h *OrderHandler) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		log.Warn().Str("order_id", idParam).Msg("Failed to parse id parameter from URL")
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	var requestPayload UpdateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&requestPayload); err != nil {
		log.Error().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(requestPayload); err != nil {
		respondWithValidationErrors(w, err)
		return
	}

	domainOrder := order.Order{
		ID:        id,
		UserID:    requestPayload.UserID,
		ProductID: requestPayload.ProductID,
		Quantity:  requestPayload.Quantity,
		Status:    order.OrderStatus(requestPayload.Status),
	}

	if err := h.service.UpdateOrder(r.Context(), &domainOrder); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		if errors.Is(err, order.ErrMissingFields) {
			respondWithError(w, http.StatusBadRequest, "Missing required fields: userId, productId, quantity, status")
			return
		}
		log.Error().Err(err).Msg("Failed to update order via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to update order")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Order %d updated successfully", id),
	})
}

func (h *OrderHandler) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		log.Warn().Str("order_id", idParam).Msg("Failed to parse id parameter from URL")
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return
	}

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete order via service")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to delete order")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Order %d deleted successfully", id),
	})
}
