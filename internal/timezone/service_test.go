package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFinder struct {
	name   string
	gotLng float64
	gotLat float64
}

func (s *stubFinder) GetTimezoneName(lng float64, lat float64) string {
	s.gotLng, s.gotLat = lng, lat
	return s.name
}

func TestService_GetTimezone_ArgumentOrder(t *testing.T) {
	f := &stubFinder{name: "Europe/Paris"}
	svc := NewServiceWithFinder(f)

	got, err := svc.GetTimezone(48.8566, 2.3522)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", got)
	assert.Equal(t, 2.3522, f.gotLng)
	assert.Equal(t, 48.8566, f.gotLat)
}

func TestService_GetTimezone_NotFound(t *testing.T) {
	svc := NewServiceWithFinder(&stubFinder{})

	_, err := svc.GetTimezone(0, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DefaultFinder(t *testing.T) {
	if testing.Short() {
		t.Skip("loads timezone polygons")
	}

	svc, err := NewService()
	require.NoError(t, err)

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{"Paris", 48.8566, 2.3522, "Europe/Paris"},
		{"Tokyo", 35.6762, 139.6503, "Asia/Tokyo"},
		{"New York City", 40.7128, -74.0060, "America/New_York"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
