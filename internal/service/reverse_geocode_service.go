package service

import (
	"context"
	"errors"
	"fmt"

	"geocoder/internal/models"
)

var (
	ErrInvalidLatitude  = errors.New("service: invalid latitude")
	ErrInvalidLongitude = errors.New("service: invalid longitude")
)

// DefaultReverseRadiusMeters bounds the nearest-address search when no radius is configured.
const DefaultReverseRadiusMeters = 10000

// ReverseGeoCodeService contains the core business logic for reverse geocoding operations
type ReverseGeoCodeService struct {
	repo         ReverseGeoCodeRepository
	radiusMeters int
}

// ReverseGeoCodeRepository interface for dependency injection
type ReverseGeoCodeRepository interface {
	FindNearestAddress(ctx context.Context, lat, lon float64, radiusMeters int) (*models.Address, error)
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(repo ReverseGeoCodeRepository, radiusMeters int) *ReverseGeoCodeService {
	if radiusMeters <= 0 {
		radiusMeters = DefaultReverseRadiusMeters
	}
	return &ReverseGeoCodeService{repo: repo, radiusMeters: radiusMeters}
}

// ReverseGeocode finds the nearest address to the given coordinates using a
// spatial query. It returns nil without error when nothing is in range.
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Address, error) {
	// Written as negated ranges so NaN is rejected.
	if !(lat >= -90 && lat <= 90) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidLatitude, lat)
	}
	if !(lon >= -180 && lon <= 180) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidLongitude, lon)
	}

	address, err := s.repo.FindNearestAddress(ctx, lat, lon, s.radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest address: %w", err)
	}

	return address, nil
}
