package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"coderr-backend/internal/domains/review/model"
	"coderr-backend/internal/domains/review/service"
	"coderr-backend/internal/shared/middleware"
	"coderr-backend/internal/shared/response"
	"coderr-backend/pkg/logger"
)

// ReviewHandler exposes the review endpoints. All of them require a token.
type ReviewHandler struct {
	service service.Service
}

func NewReviewHandler(service service.Service) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/reviews", h.ListReviews)
	router.GET("/reviews/:id", h.GetReview)
	router.POST("/reviews", h.CreateReview)
	router.PATCH("/reviews/:id", h.UpdateReview)
	router.DELETE("/reviews/:id", h.DeleteReview)
}

// CreateReview handles POST /reviews. Customer users only, one review per
// business user.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.CreateReview(c.Request.Context(), principal, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// ListReviews handles GET /reviews with optional business_user_id and
// reviewer_id filters.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var req model.ListReviewsRequest

	if v := c.Query("business_user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "invalid business_user_id")
			return
		}
		req.BusinessUserID = &id
	}
	if v := c.Query("reviewer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "invalid reviewer_id")
			return
		}
		req.ReviewerID = &id
	}
	req.Ordering = c.Query("ordering")

	result, err := h.service.ListReviews(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetReview handles GET /reviews/:id.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	result, err := h.service.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// updatableReviewFields are the only keys a PATCH body may carry. A body
// with any other key is rejected as a whole, nothing is applied.
var updatableReviewFields = map[string]bool{
	"rating":      true,
	"description": true,
}

// UpdateReview handles PATCH /reviews/:id. Only the reviewer may call it.
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	for key := range raw {
		if !updatableReviewFields[key] {
			response.BadRequest(c, "unexpected field: "+key)
			return
		}
	}

	var req model.UpdateReviewRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.UpdateReview(c.Request.Context(), principal, reviewID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeleteReview handles DELETE /reviews/:id. Only the reviewer may call it.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), principal, reviewID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReviewHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrReviewNotFound), errors.Is(err, model.ErrBusinessUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrCustomerOnly), errors.Is(err, model.ErrNotPermitted):
		response.Forbidden(c, err.Error())
	case errors.Is(err, model.ErrDuplicateReview):
		response.Conflict(c, err.Error())
	default:
		logger.Error("review handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
