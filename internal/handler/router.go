package handler

import (
	"net/http"

	_ "geocoder/internal/docs" // registers the swagger document

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the geocoding endpoints, health check and swagger UI.
func NewRouter(geo *GeoCodeHandler, reverse *ReverseGeocodeHandler, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(logger), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/geocode", geo.GeoCode)
	r.GET("/reverse-geocode", reverse.ReverseGeocode)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
