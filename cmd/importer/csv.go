package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"geocoder/internal/models"

	"github.com/rs/zerolog/log"
)

// TimezoneResolver fills in a timezone for rows that have coordinates but no timezone column value.
type TimezoneResolver interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

type adminColumns struct {
	level int
	name  string
	code  string
}

var adminLevelColumns = []adminColumns{
	{1, "admin1_name", "admin1_code"},
	{2, "admin2_name", "admin2_code"},
	{3, "admin3_name", "admin3_code"},
	{4, "admin4_name", "admin4_code"},
	{5, "admin5_name", "admin5_code"},
}

// record gives header-addressed access to one CSV row. Missing columns read as blank.
type record struct {
	index  map[string]int
	fields []string
}

func (r record) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r record) float(column string) (float64, bool, error) {
	s := r.get(column)
	if s == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("invalid %s: %q", column, s)
	}
	return f, true, nil
}

// parseCSV reads addresses from a CSV file whose first line is a header.
// Blank cells leave the matching field absent. tz may be nil.
func parseCSV(r io.Reader, tz TimezoneResolver) ([]models.Address, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var addresses []models.Address
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		addr, err := parseRecord(record{index: index, fields: fields}, tz)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		addresses = append(addresses, addr)
	}

	return addresses, nil
}

func parseRecord(rec record, tz TimezoneResolver) (models.Address, error) {
	var opts []models.AddressOption

	lat, hasLat, err := rec.float("latitude")
	if err != nil {
		return models.Address{}, err
	}
	lon, hasLon, err := rec.float("longitude")
	if err != nil {
		return models.Address{}, err
	}
	hasCoords := hasLat && hasLon
	if hasCoords {
		opts = append(opts, models.WithCoordinates(models.NewCoordinates(lat, lon)))
	}

	var bounds [4]float64
	hasBounds := true
	for i, column := range []string{"south", "west", "north", "east"} {
		v, ok, err := rec.float(column)
		if err != nil {
			return models.Address{}, err
		}
		bounds[i] = v
		hasBounds = hasBounds && ok
	}
	if hasBounds {
		opts = append(opts, models.WithBounds(models.NewBounds(bounds[0], bounds[1], bounds[2], bounds[3])))
	}

	text := []struct {
		column string
		opt    func(string) models.AddressOption
	}{
		{"street_number", models.WithStreetNumber},
		{"street_name", models.WithStreetName},
		{"postal_code", models.WithPostalCode},
		{"locality", models.WithLocality},
		{"sub_locality", models.WithSubLocality},
		{"location_type", models.WithLocationType},
	}
	for _, t := range text {
		if v := rec.get(t.column); v != "" {
			opts = append(opts, t.opt(v))
		}
	}

	var levels []models.AdminLevel
	for _, col := range adminLevelColumns {
		name := rec.get(col.name)
		if name == "" {
			continue
		}
		levels = append(levels, models.NewAdminLevel(col.level, name, rec.get(col.code)))
	}
	collection, err := models.NewAdminLevelCollection(levels...)
	if err != nil {
		return models.Address{}, err
	}
	opts = append(opts, models.WithAdminLevels(collection))

	if name, code := rec.get("country"), rec.get("country_code"); name != "" || code != "" {
		opts = append(opts, models.WithCountry(models.NewCountry(name, code)))
	}

	timezone := rec.get("timezone")
	if timezone == "" && hasCoords && tz != nil {
		resolved, err := tz.GetTimezone(lat, lon)
		if err != nil {
			log.Debug().Err(err).Float64("latitude", lat).Float64("longitude", lon).Msg("no timezone for coordinates")
		} else {
			timezone = resolved
		}
	}
	if timezone != "" {
		opts = append(opts, models.WithTimezone(timezone))
	}

	return models.NewAddress(opts...), nil
}
