package timezone

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// ErrNotFound is returned when no timezone polygon contains the coordinates.
var ErrNotFound = errors.New("timezone: no timezone found")

// Finder is the part of tzf.F the service needs.
type Finder interface {
	GetTimezoneName(lng float64, lat float64) string
}

// Service resolves IANA timezone identifiers from coordinates.
type Service struct {
	finder Finder
}

var (
	defaultFinder tzf.F
	defaultErr    error
	once          sync.Once
)

// NewService returns a service backed by the tzf default finder. The finder
// holds its polygon data in memory, so it is built once per process.
func NewService() (*Service, error) {
	once.Do(func() {
		defaultFinder, defaultErr = tzf.NewDefaultFinder()
		if defaultErr != nil {
			defaultErr = fmt.Errorf("timezone: failed to initialize finder: %w", defaultErr)
		}
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return &Service{finder: defaultFinder}, nil
}

// NewServiceWithFinder creates a service on top of a custom finder.
func NewServiceWithFinder(f Finder) *Service {
	return &Service{finder: f}
}

// GetTimezone returns a name like "Europe/Paris" for the given coordinates.
func (s *Service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("%w for coordinates lat=%f, lon=%f", ErrNotFound, latitude, longitude)
	}
	return name, nil
}
