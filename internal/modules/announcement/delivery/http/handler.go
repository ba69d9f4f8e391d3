package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ummahconnect/backend/internal/modules/announcement/dto"
	"github.com/ummahconnect/backend/internal/modules/announcement/service"
	"github.com/ummahconnect/backend/pkg/response"
	"github.com/ummahconnect/backend/pkg/validator"
)

type AnnouncementHandler struct {
	service service.AnnouncementService
}

func NewAnnouncementHandler(service service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	author, err := response.GetCurrentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.CreateAnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	a, err := h.service.Create(c.Request.Context(), author, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	var query dto.ListAnnouncementsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	announcements, err := h.service.ListActive(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, announcements)
}
