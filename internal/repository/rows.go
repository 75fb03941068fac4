package repository

import (
	"encoding/json"
	"fmt"

	"geocoder/internal/models"
)

// addressRow mirrors one addresses row; NULL columns scan into nil pointers.
type addressRow struct {
	StreetNumber *string
	StreetName   *string
	PostalCode   *string
	Locality     *string
	SubLocality  *string
	LocationType *string
	AdminLevels  []byte
	Country      *string
	CountryCode  *string
	Timezone     *string
	Latitude     *float64
	Longitude    *float64
	South        *float64
	West         *float64
	North        *float64
	East         *float64
}

// adminLevelJSON is the element stored in the admin_levels JSONB array.
type adminLevelJSON struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Code  string `json:"code,omitempty"`
}

func (r *addressRow) dest() []any {
	return []any{
		&r.StreetNumber,
		&r.StreetName,
		&r.PostalCode,
		&r.Locality,
		&r.SubLocality,
		&r.LocationType,
		&r.AdminLevels,
		&r.Country,
		&r.CountryCode,
		&r.Timezone,
		&r.Latitude,
		&r.Longitude,
		&r.South,
		&r.West,
		&r.North,
		&r.East,
	}
}

func (r *addressRow) toAddress() (models.Address, error) {
	var opts []models.AddressOption

	if r.Latitude != nil && r.Longitude != nil {
		opts = append(opts, models.WithCoordinates(models.NewCoordinates(*r.Latitude, *r.Longitude)))
	}
	if r.South != nil && r.West != nil && r.North != nil && r.East != nil {
		opts = append(opts, models.WithBounds(models.NewBounds(*r.South, *r.West, *r.North, *r.East)))
	}

	strs := []struct {
		v   *string
		opt func(string) models.AddressOption
	}{
		{r.StreetNumber, models.WithStreetNumber},
		{r.StreetName, models.WithStreetName},
		{r.PostalCode, models.WithPostalCode},
		{r.LocationType, models.WithLocationType},
		{r.Locality, models.WithLocality},
		{r.SubLocality, models.WithSubLocality},
		{r.Timezone, models.WithTimezone},
	}
	for _, s := range strs {
		if s.v != nil {
			opts = append(opts, s.opt(*s.v))
		}
	}

	if r.Country != nil || r.CountryCode != nil {
		opts = append(opts, models.WithCountry(models.NewCountry(value(r.Country), value(r.CountryCode))))
	}

	if len(r.AdminLevels) > 0 {
		var stored []adminLevelJSON
		if err := json.Unmarshal(r.AdminLevels, &stored); err != nil {
			return models.Address{}, fmt.Errorf("repository: failed to decode admin levels: %w", err)
		}
		levels := make([]models.AdminLevel, 0, len(stored))
		for _, l := range stored {
			levels = append(levels, models.NewAdminLevel(l.Level, l.Name, l.Code))
		}
		collection, err := models.NewAdminLevelCollection(levels...)
		if err != nil {
			return models.Address{}, fmt.Errorf("repository: invalid admin levels: %w", err)
		}
		opts = append(opts, models.WithAdminLevels(collection))
	}

	return models.NewAddress(opts...), nil
}

// insertValues returns the COPY row for a, in insertColumns order.
func insertValues(a models.Address) ([]any, error) {
	stored := make([]adminLevelJSON, 0, a.AdminLevels().Len())
	for _, l := range a.AdminLevels().All() {
		stored = append(stored, adminLevelJSON{Level: l.Level, Name: l.Name, Code: l.Code})
	}
	levels, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to encode admin levels: %w", err)
	}

	var country, countryCode any
	if c, ok := a.Country(); ok {
		country, countryCode = c.Name, c.Code
	}

	var lat, lon any
	if c, ok := a.Coordinates(); ok {
		lat, lon = c.Latitude, c.Longitude
	}

	var south, west, north, east any
	if b, ok := a.Bounds(); ok {
		south, west, north, east = b.South, b.West, b.North, b.East
	}

	return []any{
		optional(a.StreetNumber()),
		optional(a.StreetName()),
		optional(a.PostalCode()),
		optional(a.Locality()),
		optional(a.SubLocality()),
		optional(a.LocationType()),
		levels,
		country,
		countryCode,
		optional(a.Timezone()),
		lat,
		lon,
		south,
		west,
		north,
		east,
	}, nil
}

func optional(s string, ok bool) any {
	if !ok {
		return nil
	}
	return s
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
