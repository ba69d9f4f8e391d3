package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ummahconnect/backend/internal/modules/stat/service"
	"github.com/ummahconnect/backend/pkg/response"
)

type StatHandler struct {
	service service.StatService
}

func NewStatHandler(service service.StatService) *StatHandler {
	return &StatHandler{service: service}
}

func (h *StatHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
