package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdminLevelCollection(t *testing.T) {
	c, err := NewAdminLevelCollection(
		NewAdminLevel(2, "Paris", "75"),
		NewAdminLevel(1, "Île-de-France", "IDF"),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []AdminLevel{
		{Level: 2, Name: "Paris", Code: "75"},
		{Level: 1, Name: "Île-de-France", Code: "IDF"},
	}, c.All())

	first, ok := c.First()
	require.True(t, ok)
	assert.Equal(t, 2, first.Level)

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "IDF", got.Code)

	assert.True(t, c.Has(2))
	assert.False(t, c.Has(3))
}

func TestNewAdminLevelCollection_Duplicate(t *testing.T) {
	_, err := NewAdminLevelCollection(
		NewAdminLevel(1, "Île-de-France", "IDF"),
		NewAdminLevel(1, "Bretagne", "BRE"),
	)
	assert.ErrorIs(t, err, ErrDuplicateAdminLevel)
}

func TestAdminLevelCollection_ZeroValue(t *testing.T) {
	var c AdminLevelCollection

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []AdminLevel{}, c.All())
	_, ok := c.First()
	assert.False(t, ok)
}

func TestAdminLevelCollection_Immutable(t *testing.T) {
	in := []AdminLevel{NewAdminLevel(1, "Île-de-France", "IDF")}
	c, err := NewAdminLevelCollection(in...)
	require.NoError(t, err)

	in[0].Name = "changed"
	out := c.All()
	out[0].Name = "changed too"

	got, _ := c.Get(1)
	assert.Equal(t, "Île-de-France", got.Name)
}
