package scope

import (
	"context"

	"go-campfire/internal/features/facility"
	"go-campfire/internal/features/faction"
	"go-campfire/internal/features/organization"
	"go-campfire/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
)

// Scoped filters restrict collection queries to one organization, facility
// or faction. The entity resolves from the URL slug when present, falling
// back to the current profile. When neither yields an entity the filter is
// empty, which Mongo treats as match-all; callers scope to "everything"
// rather than erroring.

func OrganizationFilter(ctx context.Context, repo organization.OrganizationRepository, slug string, profile *user.Profile) bson.M {
	if slug != "" {
		if org, err := repo.FindBySlug(ctx, slug); err == nil {
			return bson.M{"organization_id": org.ID}
		}
	}
	if profile != nil && profile.Organization != nil {
		return bson.M{"organization_id": profile.Organization.ID}
	}
	return bson.M{}
}

func FacilityFilter(ctx context.Context, repo facility.FacilityRepository, slug string, profile *user.Profile) bson.M {
	if slug != "" {
		if f, err := repo.FindBySlug(ctx, slug); err == nil {
			return bson.M{"facility_id": f.ID}
		}
	}
	if profile != nil && profile.Facility != nil {
		return bson.M{"facility_id": profile.Facility.ID}
	}
	return bson.M{}
}

func FactionFilter(ctx context.Context, repo faction.FactionRepository, slug string, profile *user.Profile) bson.M {
	if slug != "" {
		if f, err := repo.FindBySlug(ctx, slug); err == nil {
			return bson.M{"faction_id": f.ID}
		}
	}
	if profile != nil && profile.Faction != nil {
		return bson.M{"faction_id": profile.Faction.ID}
	}
	return bson.M{}
}

// Merge combines a scope filter with extra criteria without mutating either.
func Merge(scopeFilter bson.M, extra bson.M) bson.M {
	merged := bson.M{}
	for k, v := range scopeFilter {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
