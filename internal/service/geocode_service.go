package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"geocoder/internal/models"
)

// ErrEmptyQuery is returned when Geocode is called without search text.
var ErrEmptyQuery = errors.New("service: address cannot be empty")

// DefaultSearchLimit caps forward geocoding results when no limit is configured.
const DefaultSearchLimit = 10

// GeoCodeService contains the core business logic for geocoding operations
type GeoCodeService struct {
	repo  GeoCodeRepository
	limit int
}

// GeoCodeRepository interface for dependency injection
type GeoCodeRepository interface {
	SearchAddressesByText(ctx context.Context, query string, limit int) ([]models.Address, error)
}

// NewGeoCodeService creates a new geo code service. A non-positive limit
// falls back to DefaultSearchLimit.
func NewGeoCodeService(repo GeoCodeRepository, limit int) *GeoCodeService {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	return &GeoCodeService{repo: repo, limit: limit}
}

// Geocode searches for addresses by free text using full-text search
func (s *GeoCodeService) Geocode(ctx context.Context, address string) ([]models.Address, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyQuery
	}

	addresses, err := s.repo.SearchAddressesByText(ctx, address, s.limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search addresses: %w", err)
	}

	return addresses, nil
}
