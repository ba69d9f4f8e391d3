package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ummahconnect/backend/internal/modules/reference/service"
	"github.com/ummahconnect/backend/pkg/response"
)

type ReferenceHandler struct {
	service service.ReferenceService
}

func NewReferenceHandler(service service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

func (h *ReferenceHandler) PrayerTimes(c *gin.Context) {
	city := c.Query("city")
	country := c.Query("country")
	if city == "" || country == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city and country are required"})
		return
	}

	payload, err := h.service.PrayerTimes(c.Request.Context(), city, country)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

func (h *ReferenceHandler) Qibla(c *gin.Context) {
	latitude := c.Query("latitude")
	longitude := c.Query("longitude")
	if latitude == "" || longitude == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required"})
		return
	}

	payload, err := h.service.Qibla(c.Request.Context(), latitude, longitude)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

func (h *ReferenceHandler) AsmaUlHusna(c *gin.Context) {
	payload, err := h.service.AsmaUlHusna(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}
