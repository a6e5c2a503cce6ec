package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFavoriteIsSetLike(t *testing.T) {
	pref := &NavigationPreference{Favorites: []string{}}

	assert.True(t, pref.AddFavorite("dashboard"))
	assert.False(t, pref.AddFavorite("dashboard"), "second add is a no-op")
	assert.Equal(t, []string{"dashboard"}, pref.Favorites)
}

func TestRemoveFavoriteDropsAllOccurrences(t *testing.T) {
	// Rows written before set semantics were enforced may hold duplicates.
	pref := &NavigationPreference{Favorites: []string{"a", "b", "a"}}

	assert.True(t, pref.RemoveFavorite("a"))
	assert.Equal(t, []string{"b"}, pref.Favorites)
	assert.False(t, pref.RemoveFavorite("a"))
}

func TestToggleFavorite(t *testing.T) {
	pref := &NavigationPreference{Favorites: []string{}}

	assert.True(t, pref.ToggleFavorite("leader_enrollments"))
	assert.Equal(t, []string{"leader_enrollments"}, pref.Favorites)

	assert.False(t, pref.ToggleFavorite("leader_enrollments"))
	assert.Empty(t, pref.Favorites)
}

func TestFavoritesKeepInsertionOrder(t *testing.T) {
	pref := &NavigationPreference{}
	pref.AddFavorite("c")
	pref.AddFavorite("a")
	pref.AddFavorite("b")
	assert.Equal(t, []string{"c", "a", "b"}, pref.Favorites)
}
