package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ummahconnect/backend/internal/modules/bot/dto"
	"github.com/ummahconnect/backend/internal/modules/bot/service"
	"github.com/ummahconnect/backend/pkg/response"
	"github.com/ummahconnect/backend/pkg/validator"
)

type BotHandler struct {
	service service.BotService
}

func NewBotHandler(service service.BotService) *BotHandler {
	return &BotHandler{service: service}
}

func (h *BotHandler) Chat(c *gin.Context) {
	user, err := response.GetCurrentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	resp, err := h.service.Chat(c.Request.Context(), user, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
