package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ummahconnect/backend/internal/modules/forum/dto"
	"github.com/ummahconnect/backend/internal/modules/forum/service"
	"github.com/ummahconnect/backend/pkg/response"
	"github.com/ummahconnect/backend/pkg/validator"
)

type ForumHandler struct {
	service service.ForumService
}

func NewForumHandler(service service.ForumService) *ForumHandler {
	return &ForumHandler{service: service}
}

func (h *ForumHandler) CreateTopic(c *gin.Context) {
	creator, err := response.GetCurrentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.CreateTopicInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	topic, err := h.service.CreateTopic(c.Request.Context(), creator, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, topic)
}

func (h *ForumHandler) ListTopics(c *gin.Context) {
	var query dto.ListTopicsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	topics, err := h.service.ListTopics(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, topics)
}
