package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coderr-backend/internal/domains/offer/model"
	"coderr-backend/internal/domains/offer/service"
	"coderr-backend/internal/shared/middleware"
	"coderr-backend/internal/shared/response"
	"coderr-backend/pkg/logger"
)

// OfferHandler exposes the offer and offer detail endpoints.
type OfferHandler struct {
	service service.Service
}

func NewOfferHandler(service service.Service) *OfferHandler {
	return &OfferHandler{service: service}
}

// RegisterPublicRoutes wires the read endpoints, reachable without a token.
func (h *OfferHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/offers", h.ListOffers)
	router.GET("/offers/:id", h.GetOffer)
	router.GET("/offerdetails/:id", h.GetDetail)
}

// RegisterRoutes wires the authenticated endpoints.
func (h *OfferHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/offers", h.CreateOffer)
	router.PATCH("/offers/:id", h.UpdateOffer)
	router.DELETE("/offers/:id", h.DeleteOffer)
	router.DELETE("/offerdetails/:id", h.DeleteDetail)
}

// CreateOffer handles POST /offers. Business users only.
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.CreateOffer(c.Request.Context(), principal, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// ListOffers handles GET /offers with filtering, search, ordering and
// pagination.
func (h *OfferHandler) ListOffers(c *gin.Context) {
	req, err := parseListRequest(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, total, err := h.service.ListOffers(c.Request.Context(), *req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result, &response.Meta{
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}

func parseListRequest(c *gin.Context) (*model.ListOffersRequest, error) {
	req := &model.ListOffersRequest{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}

	if v := c.Query("creator_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, errors.New("invalid creator_id")
		}
		req.CreatorID = &id
	}
	if v := c.Query("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, errors.New("invalid min_price")
		}
		req.MinPrice = &d
	}
	if v := c.Query("max_delivery_time"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid max_delivery_time")
		}
		req.MaxDeliveryTime = &n
	}
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid page")
		}
		req.Page = n
	}
	if v := c.Query("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.New("invalid page_size")
		}
		req.PageSize = n
	}

	req.Normalize()
	return req, nil
}

// GetOffer handles GET /offers/:id.
func (h *OfferHandler) GetOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid offer ID")
		return
	}

	result, err := h.service.GetOffer(c.Request.Context(), offerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// UpdateOffer handles PATCH /offers/:id. Only the offer owner may call it.
// A details array in the body is reconciled against the stored detail set.
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid offer ID")
		return
	}

	var req model.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.UpdateOffer(c.Request.Context(), principal, offerID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeleteOffer handles DELETE /offers/:id. Only the offer owner may call it.
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid offer ID")
		return
	}

	if err := h.service.DeleteOffer(c.Request.Context(), principal, offerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDetail handles GET /offerdetails/:id.
func (h *OfferHandler) GetDetail(c *gin.Context) {
	detailID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid detail ID")
		return
	}

	result, err := h.service.GetDetail(c.Request.Context(), detailID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeleteDetail handles DELETE /offerdetails/:id. Only the owner of the
// parent offer may call it, and the last remaining detail cannot be removed.
func (h *OfferHandler) DeleteDetail(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	detailID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid detail ID")
		return
	}

	if err := h.service.DeleteDetail(c.Request.Context(), principal, detailID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OfferHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrOfferNotFound), errors.Is(err, model.ErrDetailNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrBusinessOnly), errors.Is(err, model.ErrNotPermitted):
		response.Forbidden(c, err.Error())
	case errors.Is(err, model.ErrNoDetails),
		errors.Is(err, model.ErrDuplicateOfferType),
		errors.Is(err, model.ErrInvalidOfferType),
		errors.Is(err, model.ErrMissingOfferType),
		errors.Is(err, model.ErrInvalidDeliveryTime),
		errors.Is(err, model.ErrMissingDeliveryTime):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("offer handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
