package models

// Country is a country name with its ISO 3166-1 code. Either part may be empty.
type Country struct {
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"`
}

// NewCountry creates a country.
func NewCountry(name, code string) Country {
	return Country{Name: name, Code: code}
}

// nullable maps an empty string to nil for the flat mapping.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
