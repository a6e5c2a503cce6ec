package scope

import (
	"context"
	"errors"
	"testing"

	"go-campfire/internal/features/faction"
	"go-campfire/internal/features/user"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubFactionRepo struct {
	faction.FactionRepository
	bySlug map[string]*faction.Faction
}

func (s *stubFactionRepo) FindBySlug(ctx context.Context, slug string) (*faction.Faction, error) {
	if f, ok := s.bySlug[slug]; ok {
		return f, nil
	}
	return nil, errors.New("not found")
}

func TestFactionFilterPrefersURLSlug(t *testing.T) {
	fromURL := &faction.Faction{ID: primitive.NewObjectID(), Slug: "eagles"}
	fromProfile := &faction.Faction{ID: primitive.NewObjectID(), Slug: "owls"}
	repo := &stubFactionRepo{bySlug: map[string]*faction.Faction{"eagles": fromURL}}
	profile := &user.Profile{Faction: fromProfile}

	filter := FactionFilter(context.Background(), repo, "eagles", profile)
	assert.Equal(t, bson.M{"faction_id": fromURL.ID}, filter)
}

func TestFactionFilterFallsBackToProfile(t *testing.T) {
	fromProfile := &faction.Faction{ID: primitive.NewObjectID(), Slug: "owls"}
	repo := &stubFactionRepo{bySlug: map[string]*faction.Faction{}}
	profile := &user.Profile{Faction: fromProfile}

	filter := FactionFilter(context.Background(), repo, "gone", profile)
	assert.Equal(t, bson.M{"faction_id": fromProfile.ID}, filter)
}

func TestFactionFilterNoScopeIsMatchAll(t *testing.T) {
	repo := &stubFactionRepo{bySlug: map[string]*faction.Faction{}}
	filter := FactionFilter(context.Background(), repo, "", &user.Profile{})
	assert.Equal(t, bson.M{}, filter)
}

func TestMergeDoesNotMutate(t *testing.T) {
	scopeFilter := bson.M{"faction_id": "x"}
	extra := bson.M{"status": "active"}

	merged := Merge(scopeFilter, extra)
	assert.Equal(t, bson.M{"faction_id": "x", "status": "active"}, merged)
	assert.Equal(t, bson.M{"faction_id": "x"}, scopeFilter)
	assert.Equal(t, bson.M{"status": "active"}, extra)
}
