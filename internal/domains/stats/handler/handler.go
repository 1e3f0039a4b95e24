package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coderr-backend/internal/domains/stats/service"
	"coderr-backend/internal/shared/response"
	"coderr-backend/pkg/logger"
)

// StatsHandler exposes the public platform summary endpoint.
type StatsHandler struct {
	service service.Service
}

func NewStatsHandler(service service.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/base-info", h.GetBaseInfo)
}

// GetBaseInfo handles GET /base-info.
func (h *StatsHandler) GetBaseInfo(c *gin.Context) {
	result, err := h.service.GetBaseInfo(c.Request.Context())
	if err != nil {
		logger.Error("stats handler: unexpected error", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, result)
}
