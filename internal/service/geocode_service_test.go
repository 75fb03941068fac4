package service

import (
	"context"
	"testing"

	"geocoder/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGeoCodeRepository is a mock implementation of the GeoCodeRepository interface
type MockGeoCodeRepository struct {
	mock.Mock
}

// SearchAddressesByText implements GeoCodeRepository.
func (m *MockGeoCodeRepository) SearchAddressesByText(ctx context.Context, query string, limit int) ([]models.Address, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]models.Address), args.Error(1)
}

func marunouchi() models.Address {
	return models.NewAddress(
		models.WithCoordinates(models.NewCoordinates(35.681236, 139.767125)),
		models.WithLocality("千代田区"),
		models.WithSubLocality("丸の内"),
		models.WithCountry(models.NewCountry("日本", "JP")),
	)
}

func TestGeoCodeService_Geocode(t *testing.T) {
	tests := []struct {
		name          string
		address       string
		mockQuery     string
		mockAddresses []models.Address
		mockError     error
		expected      []models.Address
		expectError   bool
	}{
		{
			name:        "empty address",
			address:     "",
			expectError: true,
		},
		{
			name:        "blank address",
			address:     "   ",
			expectError: true,
		},
		{
			name:          "successful search with results",
			address:       "東京都千代田区丸の内",
			mockQuery:     "東京都千代田区丸の内",
			mockAddresses: []models.Address{marunouchi()},
			expected:      []models.Address{marunouchi()},
		},
		{
			name:          "query is trimmed",
			address:       "  Paris ",
			mockQuery:     "Paris",
			mockAddresses: []models.Address{},
			expected:      []models.Address{},
		},
		{
			name:          "successful search with no results",
			address:       "nonexistent address",
			mockQuery:     "nonexistent address",
			mockAddresses: []models.Address{},
			expected:      []models.Address{},
		},
		{
			name:          "repository error",
			address:       "東京都千代田区丸の内",
			mockQuery:     "東京都千代田区丸の内",
			mockAddresses: nil,
			mockError:     assert.AnError,
			expectError:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockRepo := new(MockGeoCodeRepository)
			service := NewGeoCodeService(mockRepo, 5)

			if tt.mockQuery != "" {
				mockRepo.On("SearchAddressesByText", mock.Anything, tt.mockQuery, 5).Return(tt.mockAddresses, tt.mockError)
			}

			// Execute
			result, err := service.Geocode(context.Background(), tt.address)

			// Assert
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGeoCodeService_Geocode_EmptyQuerySentinel(t *testing.T) {
	service := NewGeoCodeService(new(MockGeoCodeRepository), 0)

	_, err := service.Geocode(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestNewGeoCodeService_DefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultSearchLimit, NewGeoCodeService(nil, 0).limit)
	assert.Equal(t, DefaultSearchLimit, NewGeoCodeService(nil, -3).limit)
	assert.Equal(t, 25, NewGeoCodeService(nil, 25).limit)
}
