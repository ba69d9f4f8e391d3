package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ummahconnect/backend/internal/modules/post/dto"
	"github.com/ummahconnect/backend/internal/modules/post/service"
	"github.com/ummahconnect/backend/pkg/response"
	"github.com/ummahconnect/backend/pkg/validator"
)

type PostHandler struct {
	service service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

func (h *PostHandler) Create(c *gin.Context) {
	author, err := response.GetCurrentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	post, err := h.service.Create(c.Request.Context(), author, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) List(c *gin.Context) {
	var query dto.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	posts, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	author, err := response.GetCurrentUser(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input dto.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), author, c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *PostHandler) ListComments(c *gin.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
