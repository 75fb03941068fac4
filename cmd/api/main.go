package main

import (
	"context"

	"geocoder/internal/config"
	"geocoder/internal/handler"
	"geocoder/internal/repository"
	"geocoder/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// @title        Geocoder API
// @version      1.0
// @description  Forward and reverse geocoding over a PostGIS address store.
// @BasePath     /
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := config.NewLogger()
	log.Logger = logger
	gin.SetMode(config.GinMode)

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot prepare schema")
	}

	geoCodeService := service.NewGeoCodeService(repo, config.SearchLimit)
	reverseGeocodeService := service.NewReverseGeoCodeService(repo, config.ReverseRadiusMeters)

	geoCodeHandler := handler.NewGeoCodeHandler(geoCodeService)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(reverseGeocodeService)

	r := handler.NewRouter(geoCodeHandler, reverseGeocodeHandler, logger)

	log.Info().Str("addr", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
