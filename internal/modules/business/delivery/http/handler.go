package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ummahconnect/backend/internal/modules/business/dto"
	"github.com/ummahconnect/backend/internal/modules/business/service"
	"github.com/ummahconnect/backend/pkg/response"
	"github.com/ummahconnect/backend/pkg/validator"
)

type BusinessHandler struct {
	service service.BusinessService
}

func NewBusinessHandler(service service.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

func (h *BusinessHandler) Create(c *gin.Context) {
	var input dto.CreateBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	b, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BusinessHandler) List(c *gin.Context) {
	var query dto.ListBusinessesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	businesses, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, businesses)
}
