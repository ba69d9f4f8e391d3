package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ummahconnect/backend/pkg/apperror"
	"github.com/ummahconnect/backend/pkg/response"
	"github.com/ummahconnect/backend/pkg/storage"
)

// AttachmentHandler uploads post images and returns the hosted URL the
// client then sets as image_url.
type AttachmentHandler struct {
	storage storage.ImageStorage
	folder  string
}

func NewAttachmentHandler(imageStorage storage.ImageStorage, folder string) *AttachmentHandler {
	return &AttachmentHandler{storage: imageStorage, folder: folder}
}

func (h *AttachmentHandler) Upload(c *gin.Context) {
	if h.storage == nil {
		response.Error(c, apperror.New(0, "image storage is not configured", apperror.ErrUpstream))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	url, err := h.storage.UploadImage(c.Request.Context(), file, h.folder, fileHeader.Filename)
	if err != nil {
		response.Error(c, apperror.New(0, "failed to upload image", apperror.ErrUpstream))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
