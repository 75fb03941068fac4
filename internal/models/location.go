package models

// Location is the read-only view of a geocoded result, whatever produced it.
type Location interface {
	Coordinates() (Coordinates, bool)
	Bounds() (Bounds, bool)
	StreetNumber() (string, bool)
	StreetName() (string, bool)
	Locality() (string, bool)
	PostalCode() (string, bool)
	SubLocality() (string, bool)
	LocationType() (string, bool)
	AdminLevels() AdminLevelCollection
	Country() (Country, bool)
	Timezone() (string, bool)

	// ToMap flattens the location into the key set used on the wire.
	ToMap() map[string]any
}

var _ Location = Address{}
