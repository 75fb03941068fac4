package models

import (
	"errors"
	"fmt"
)

// ErrDuplicateAdminLevel is returned when two entries share a level number.
var ErrDuplicateAdminLevel = errors.New("models: duplicate admin level")

// AdminLevel is one tier of political subdivision, e.g. a region or a department.
// Level 1 is the broadest tier below the country.
type AdminLevel struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Code  string `json:"code,omitempty"`
}

// NewAdminLevel creates an admin level entry.
func NewAdminLevel(level int, name, code string) AdminLevel {
	return AdminLevel{Level: level, Name: name, Code: code}
}

// AdminLevelCollection is an immutable, insertion-ordered set of admin levels
// keyed by level number. The zero value is an empty collection.
type AdminLevelCollection struct {
	levels []AdminLevel
}

// NewAdminLevelCollection builds a collection in the given order.
func NewAdminLevelCollection(levels ...AdminLevel) (AdminLevelCollection, error) {
	seen := make(map[int]struct{}, len(levels))
	for _, l := range levels {
		if _, ok := seen[l.Level]; ok {
			return AdminLevelCollection{}, fmt.Errorf("%w: %d", ErrDuplicateAdminLevel, l.Level)
		}
		seen[l.Level] = struct{}{}
	}

	out := make([]AdminLevel, len(levels))
	copy(out, levels)
	return AdminLevelCollection{levels: out}, nil
}

// Len returns the number of levels.
func (c AdminLevelCollection) Len() int { return len(c.levels) }

// IsEmpty reports whether the collection holds no levels.
func (c AdminLevelCollection) IsEmpty() bool { return len(c.levels) == 0 }

// All returns a copy of the levels in insertion order. Never nil.
func (c AdminLevelCollection) All() []AdminLevel {
	out := make([]AdminLevel, len(c.levels))
	copy(out, c.levels)
	return out
}

// Get returns the entry for the given level number.
func (c AdminLevelCollection) Get(level int) (AdminLevel, bool) {
	for _, l := range c.levels {
		if l.Level == level {
			return l, true
		}
	}
	return AdminLevel{}, false
}

// Has reports whether the level number is present.
func (c AdminLevelCollection) Has(level int) bool {
	_, ok := c.Get(level)
	return ok
}

// First returns the first inserted level.
func (c AdminLevelCollection) First() (AdminLevel, bool) {
	if len(c.levels) == 0 {
		return AdminLevel{}, false
	}
	return c.levels[0], true
}

// toMap keys levels by number. Name is always a string; an empty Code is null.
func (c AdminLevelCollection) toMap() map[int]map[string]any {
	out := make(map[int]map[string]any, len(c.levels))
	for _, l := range c.levels {
		out[l.Level] = map[string]any{
			"name": l.Name,
			"code": nullable(l.Code),
		}
	}
	return out
}
