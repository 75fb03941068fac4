package models

import "github.com/paulmach/orb"

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinates creates a coordinate pair. Values are not range checked.
func NewCoordinates(latitude, longitude float64) Coordinates {
	return Coordinates{Latitude: latitude, Longitude: longitude}
}

// Point returns the coordinates as an orb point (longitude first).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Bounds is a bounding rectangle described by its south/west/north/east extents.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// NewBounds creates a bounding box.
func NewBounds(south, west, north, east float64) Bounds {
	return Bounds{South: south, West: west, North: north, East: east}
}

// NewBoundsFromOrb converts an orb bound into Bounds.
func NewBoundsFromOrb(b orb.Bound) Bounds {
	return Bounds{
		South: b.Min.Lat(),
		West:  b.Min.Lon(),
		North: b.Max.Lat(),
		East:  b.Max.Lon(),
	}
}

// Bound returns the rectangle as an orb bound.
func (b Bounds) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// Contains reports whether c lies inside the rectangle, edges included.
// Rectangles crossing the antimeridian are not handled.
func (b Bounds) Contains(c Coordinates) bool {
	return b.Bound().Contains(c.Point())
}

// ToMap returns the south/west/north/east mapping used by Address.ToMap.
func (b Bounds) ToMap() map[string]any {
	return map[string]any{
		"south": b.South,
		"west":  b.West,
		"north": b.North,
		"east":  b.East,
	}
}

func emptyBoundsMap() map[string]any {
	return map[string]any{
		"south": nil,
		"west":  nil,
		"north": nil,
		"east":  nil,
	}
}
