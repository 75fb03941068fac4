package models

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestBounds_Contains(t *testing.T) {
	paris := NewBounds(48.8156, 2.2242, 48.9021, 2.4699)

	tests := []struct {
		name   string
		coords Coordinates
		want   bool
	}{
		{"notre dame", NewCoordinates(48.8530, 2.3499), true},
		{"south west corner", NewCoordinates(48.8156, 2.2242), true},
		{"versailles", NewCoordinates(48.8049, 2.1204), false},
		{"london", NewCoordinates(51.5074, -0.1278), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paris.Contains(tt.coords))
		})
	}
}

func TestBounds_OrbRoundTrip(t *testing.T) {
	b := NewBounds(48.8, 2.2, 48.9, 2.5)

	bound := b.Bound()
	assert.Equal(t, orb.Point{2.2, 48.8}, bound.Min)
	assert.Equal(t, orb.Point{2.5, 48.9}, bound.Max)
	assert.Equal(t, b, NewBoundsFromOrb(bound))
}

func TestCoordinates_Point(t *testing.T) {
	p := NewCoordinates(48.8566, 2.3522).Point()

	assert.Equal(t, 2.3522, p.Lon())
	assert.Equal(t, 48.8566, p.Lat())
}
