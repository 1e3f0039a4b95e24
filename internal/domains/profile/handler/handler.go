package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"coderr-backend/internal/domains/profile/model"
	"coderr-backend/internal/domains/profile/service"
	"coderr-backend/internal/shared/middleware"
	"coderr-backend/internal/shared/response"
	"coderr-backend/pkg/logger"
)

// ProfileHandler exposes registration, login and profile endpoints.
type ProfileHandler struct {
	service service.Service
}

func NewProfileHandler(service service.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// RegisterPublicRoutes wires the unauthenticated endpoints.
func (h *ProfileHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/auth/registration", h.Register)
	router.POST("/auth/login", h.Login)
}

// RegisterRoutes wires the authenticated endpoints.
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup, staff gin.HandlerFunc) {
	router.GET("/profile/:id", h.GetProfile)
	router.PATCH("/profile/:id", h.UpdateProfile)
	router.GET("/profiles/business", h.ListBusinessProfiles)
	router.GET("/profiles/customer", h.ListCustomerProfiles)
	router.DELETE("/users/:id", staff, h.DeleteUser)
}

// Register handles POST /auth/registration.
func (h *ProfileHandler) Register(c *gin.Context) {
	var req model.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Login handles POST /auth/login.
func (h *ProfileHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetProfile handles GET /profile/:id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	result, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// UpdateProfile handles PATCH /profile/:id. Only the profile owner may call it.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.UpdateProfile(c.Request.Context(), principal, userID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ListBusinessProfiles handles GET /profiles/business.
func (h *ProfileHandler) ListBusinessProfiles(c *gin.Context) {
	result, err := h.service.ListBusinessProfiles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// ListCustomerProfiles handles GET /profiles/customer.
func (h *ProfileHandler) ListCustomerProfiles(c *gin.Context) {
	result, err := h.service.ListCustomerProfiles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// DeleteUser handles DELETE /users/:id (staff only, enforced by middleware
// and again by the service).
func (h *ProfileHandler) DeleteUser(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), principal, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrUserNotFound), errors.Is(err, model.ErrProfileNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrUsernameTaken), errors.Is(err, model.ErrEmailTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrNotPermitted):
		response.Forbidden(c, "not permitted")
	default:
		logger.Error("profile handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
