package navigation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NavigationPreference stores one user's favorited menu keys. Favorites keep
// insertion order but behave as a set: adding an existing key is a no-op.
type NavigationPreference struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Favorites []string           `json:"favorites" bson:"favorites"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// AddFavorite appends key unless it is already present. Reports whether the
// list changed.
func (p *NavigationPreference) AddFavorite(key string) bool {
	for _, existing := range p.Favorites {
		if existing == key {
			return false
		}
	}
	p.Favorites = append(p.Favorites, key)
	return true
}

// RemoveFavorite removes every occurrence of key. Reports whether the list
// changed.
func (p *NavigationPreference) RemoveFavorite(key string) bool {
	kept := p.Favorites[:0]
	changed := false
	for _, existing := range p.Favorites {
		if existing == key {
			changed = true
			continue
		}
		kept = append(kept, existing)
	}
	p.Favorites = kept
	return changed
}

// ToggleFavorite adds the key when absent and removes it when present.
// Returns true when the key ends up favorited.
func (p *NavigationPreference) ToggleFavorite(key string) bool {
	if p.RemoveFavorite(key) {
		return false
	}
	p.Favorites = append(p.Favorites, key)
	return true
}
