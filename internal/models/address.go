package models

import "encoding/json"

// Address is an immutable geocoded address. Every field except the admin
// levels is optional; nothing is validated, so heterogeneous source data
// passes through untouched.
type Address struct {
	coordinates  *Coordinates
	bounds       *Bounds
	streetNumber *string
	streetName   *string
	postalCode   *string
	locationType *string
	locality     *string
	subLocality  *string
	adminLevels  AdminLevelCollection
	country      *Country
	timezone     *string
}

// AddressOption sets one field during NewAddress.
type AddressOption func(*Address)

// NewAddress builds an Address from the given options. Later options win.
func NewAddress(opts ...AddressOption) Address {
	var a Address
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func WithCoordinates(c Coordinates) AddressOption {
	return func(a *Address) { a.coordinates = &c }
}

func WithBounds(b Bounds) AddressOption {
	return func(a *Address) { a.bounds = &b }
}

func WithStreetNumber(s string) AddressOption {
	return func(a *Address) { a.streetNumber = &s }
}

func WithStreetName(s string) AddressOption {
	return func(a *Address) { a.streetName = &s }
}

func WithPostalCode(s string) AddressOption {
	return func(a *Address) { a.postalCode = &s }
}

// WithLocationType sets the provider-specific precision tag, e.g. "ROOFTOP".
func WithLocationType(s string) AddressOption {
	return func(a *Address) { a.locationType = &s }
}

func WithLocality(s string) AddressOption {
	return func(a *Address) { a.locality = &s }
}

func WithSubLocality(s string) AddressOption {
	return func(a *Address) { a.subLocality = &s }
}

func WithAdminLevels(c AdminLevelCollection) AddressOption {
	return func(a *Address) { a.adminLevels = c }
}

func WithCountry(c Country) AddressOption {
	return func(a *Address) { a.country = &c }
}

// WithTimezone sets the IANA timezone identifier, e.g. "Europe/Paris".
func WithTimezone(s string) AddressOption {
	return func(a *Address) { a.timezone = &s }
}

func (a Address) Coordinates() (Coordinates, bool) {
	if a.coordinates == nil {
		return Coordinates{}, false
	}
	return *a.coordinates, true
}

func (a Address) Bounds() (Bounds, bool) {
	if a.bounds == nil {
		return Bounds{}, false
	}
	return *a.bounds, true
}

func (a Address) StreetNumber() (string, bool) { return deref(a.streetNumber) }

func (a Address) StreetName() (string, bool) { return deref(a.streetName) }

func (a Address) Locality() (string, bool) { return deref(a.locality) }

func (a Address) PostalCode() (string, bool) { return deref(a.postalCode) }

func (a Address) SubLocality() (string, bool) { return deref(a.subLocality) }

func (a Address) LocationType() (string, bool) { return deref(a.locationType) }

// AdminLevels returns the admin levels. It is empty, never absent, when the
// address was built without any.
func (a Address) AdminLevels() AdminLevelCollection { return a.adminLevels }

func (a Address) Country() (Country, bool) {
	if a.country == nil {
		return Country{}, false
	}
	return *a.country, true
}

func (a Address) Timezone() (string, bool) { return deref(a.timezone) }

// ToMap flattens the address. Absent values are nil; bounds and adminLevels
// are always present as sub-mappings. The location type is not included.
func (a Address) ToMap() map[string]any {
	var lat, lon any
	if a.coordinates != nil {
		lat = a.coordinates.Latitude
		lon = a.coordinates.Longitude
	}

	var countryName, countryCode any
	if a.country != nil {
		countryName = nullable(a.country.Name)
		countryCode = nullable(a.country.Code)
	}

	bounds := emptyBoundsMap()
	if a.bounds != nil {
		bounds = a.bounds.ToMap()
	}

	return map[string]any{
		"latitude":     lat,
		"longitude":    lon,
		"bounds":       bounds,
		"streetNumber": ptrValue(a.streetNumber),
		"streetName":   ptrValue(a.streetName),
		"postalCode":   ptrValue(a.postalCode),
		"locality":     ptrValue(a.locality),
		"subLocality":  ptrValue(a.subLocality),
		"adminLevels":  a.adminLevels.toMap(),
		"country":      countryName,
		"countryCode":  countryCode,
		"timezone":     ptrValue(a.timezone),
	}
}

// MarshalJSON encodes the address as its flat mapping.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToMap())
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

func ptrValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
