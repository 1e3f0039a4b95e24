package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"coderr-backend/internal/domains/order/model"
	"coderr-backend/internal/domains/order/service"
	"coderr-backend/internal/shared/middleware"
	"coderr-backend/internal/shared/response"
	"coderr-backend/pkg/logger"
)

// OrderHandler exposes the order endpoints. All of them require a token.
type OrderHandler struct {
	service service.Service
}

func NewOrderHandler(service service.Service) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup, staff gin.HandlerFunc) {
	router.GET("/orders", h.ListOrders)
	router.GET("/orders/:id", h.GetOrder)
	router.POST("/orders", h.CreateOrder)
	router.PATCH("/orders/:id", h.UpdateOrderStatus)
	router.DELETE("/orders/:id", staff, h.DeleteOrder)
	router.GET("/order-count/:business_user_id", h.CountInProgressOrders)
	router.GET("/completed-order-count/:business_user_id", h.CountCompletedOrders)
}

// CreateOrder handles POST /orders. Customer users only; the referenced
// offer detail is snapshotted into the new order.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.CreateOrder(c.Request.Context(), principal, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// ListOrders handles GET /orders. Returns the orders the caller takes part
// in, as customer or business.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	result, err := h.service.ListOrders(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetOrder handles GET /orders/:id. Only a party of the order (or staff)
// may read it.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	result, err := h.service.GetOrder(c.Request.Context(), principal, orderID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// UpdateOrderStatus handles PATCH /orders/:id. Only the business party of
// the order may move it out of in_progress.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.UpdateOrderStatus(c.Request.Context(), principal, orderID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeleteOrder handles DELETE /orders/:id (staff only, enforced by
// middleware and again by the service).
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.service.DeleteOrder(c.Request.Context(), principal, orderID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CountInProgressOrders handles GET /order-count/:business_user_id.
func (h *OrderHandler) CountInProgressOrders(c *gin.Context) {
	businessUserID, err := uuid.Parse(c.Param("business_user_id"))
	if err != nil {
		response.BadRequest(c, "Invalid business user ID")
		return
	}

	result, err := h.service.CountInProgressOrders(c.Request.Context(), businessUserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// CountCompletedOrders handles GET /completed-order-count/:business_user_id.
func (h *OrderHandler) CountCompletedOrders(c *gin.Context) {
	businessUserID, err := uuid.Parse(c.Param("business_user_id"))
	if err != nil {
		response.BadRequest(c, "Invalid business user ID")
		return
	}

	result, err := h.service.CountCompletedOrders(c.Request.Context(), businessUserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *OrderHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrOfferDetailNotFound),
		errors.Is(err, model.ErrBusinessUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrCustomerOnly), errors.Is(err, model.ErrNotPermitted):
		response.Forbidden(c, err.Error())
	case errors.Is(err, model.ErrInvalidStatus), errors.Is(err, model.ErrInvalidTransition):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("order handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
