package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"geocoder/internal/models"
	"geocoder/internal/service"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// GeoCodeService interface for dependency injection
type GeoCodeService interface {
	Geocode(context.Context, string) ([]models.Address, error)
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode godoc
// @Summary      Forward geocoding
// @Description  Full-text search over stored addresses. Each result is the flat address mapping.
// @Tags         geocoding
// @Produce      json
// @Param        q    query     string  true  "Free-text address"  example(Avenue Gambetta Paris)
// @Success      200  {array}   object
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	addresses, err := h.service.Geocode(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, addresses)
}
