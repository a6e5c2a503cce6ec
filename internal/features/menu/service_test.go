package menu

import (
	"context"
	"testing"

	common_models "go-campfire/internal/common/models"
	"go-campfire/internal/features/faction"
	"go-campfire/internal/features/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestService() MenuService {
	return NewMenuService(zap.NewNop())
}

func leaderUser(isAdmin bool) *user.User {
	return &user.User{
		ID:       primitive.NewObjectID(),
		Username: "leader1",
		UserType: common_models.UserTypeLeader,
		IsAdmin:  isAdmin,
	}
}

func leaderProfile(u *user.User) *user.Profile {
	return &user.Profile{
		UserID: u.ID,
		Slug:   "leader-1",
		Faction: &faction.Faction{
			ID:   primitive.NewObjectID(),
			Name: "Eagles",
			Slug: "eagles",
		},
	}
}

func findEntry(entries []ResolvedEntry, key string) *ResolvedEntry {
	for i := range entries {
		if entries[i].Key == key {
			return &entries[i]
		}
		if found := findEntry(entries[i].Children, key); found != nil {
			return found
		}
	}
	return nil
}

func TestBuildMenuResolvesDynamicKwargs(t *testing.T) {
	svc := newTestService()
	u := leaderUser(false)

	m := svc.BuildMenuForUser(context.Background(), u, leaderProfile(u), nil)

	entry := findEntry(m.Primary, "leader_enrollments")
	require.NotNil(t, entry)
	assert.Equal(t, "/factions/eagles/enrollments", entry.URL)

	// Every user type sees the common dashboard entry first.
	require.NotEmpty(t, m.Primary)
	assert.Equal(t, "dashboard", m.Primary[0].Key)
	assert.Equal(t, "/dashboard", m.Primary[0].URL)
}

func TestBuildMenuBrokenKwargPathDisablesLink(t *testing.T) {
	svc := newTestService()
	u := leaderUser(false)
	profile := &user.Profile{UserID: u.ID, Slug: "leader-1"} // no faction

	m := svc.BuildMenuForUser(context.Background(), u, profile, nil)

	entry := findEntry(m.Primary, "leader_enrollments")
	require.NotNil(t, entry)
	assert.Equal(t, "", entry.URL, "missing faction renders a disabled link, not an error")
}

func TestBuildMenuConditionHidesSubtree(t *testing.T) {
	svc := newTestService()
	u := &user.User{
		ID:       primitive.NewObjectID(),
		UserType: common_models.UserTypeFaculty,
	}
	profile := &user.Profile{UserID: u.ID, Slug: "fac-1"}

	m := svc.BuildMenuForUser(context.Background(), u, profile, nil)
	assert.Nil(t, findEntry(m.Primary, "faculty_admin"))
	assert.Nil(t, findEntry(m.Primary, "faculty_new"), "children of a hidden entry are hidden")

	u.IsAdmin = true
	m = svc.BuildMenuForUser(context.Background(), u, profile, nil)
	admin := findEntry(m.Primary, "faculty_admin")
	require.NotNil(t, admin)
	assert.Len(t, admin.Children, 3)
}

func TestBuildMenuOrganizationFacultySeesOrgOverview(t *testing.T) {
	svc := newTestService()

	orgFaculty := &user.User{
		ID:       primitive.NewObjectID(),
		Username: "orgfac1",
		UserType: common_models.UserTypeOrganizationFaculty,
	}
	m := svc.BuildMenuForUser(context.Background(), orgFaculty, &user.Profile{UserID: orgFaculty.ID}, nil)
	entry := findEntry(m.Primary, "org_overview")
	require.NotNil(t, entry)
	assert.Equal(t, "/organizations", entry.URL)

	facilityFaculty := &user.User{
		ID:       primitive.NewObjectID(),
		Username: "fac1",
		UserType: common_models.UserTypeFaculty,
	}
	m = svc.BuildMenuForUser(context.Background(), facilityFaculty, &user.Profile{UserID: facilityFaculty.ID}, nil)
	assert.Nil(t, findEntry(m.Primary, "org_overview"), "facility faculty do not get the org overview link")
}

func TestBuildMenuUnknownUserTypeGetsCommonOnly(t *testing.T) {
	svc := newTestService()
	u := &user.User{ID: primitive.NewObjectID(), UserType: "SOMETHING_ELSE"}

	m := svc.BuildMenuForUser(context.Background(), u, &user.Profile{UserID: u.ID}, nil)
	require.Len(t, m.Primary, 1)
	assert.Equal(t, "dashboard", m.Primary[0].Key)
}

func TestBuildMenuFavoritesAppendToQuick(t *testing.T) {
	svc := newTestService()
	u := leaderUser(false)

	m := svc.BuildMenuForUser(context.Background(), u, leaderProfile(u), []string{
		"leader_enrollments",
		"no_such_key",
		"leader_quick", // already in quick, must not duplicate
	})

	require.Len(t, m.Quick, 2)
	assert.Equal(t, "leader_quick", m.Quick[0].Key)
	assert.False(t, m.Quick[0].Favorite)
	assert.Equal(t, "leader_enrollments", m.Quick[1].Key)
	assert.True(t, m.Quick[1].Favorite)
	assert.Equal(t, "/factions/eagles/enrollments", m.Quick[1].URL)
}

func TestBuildMenuFavoriteConditionStillApplies(t *testing.T) {
	svc := newTestService()
	u := leaderUser(false)

	// faculty_admin requires is_admin; favoriting it must not bypass that.
	m := svc.BuildMenuForUser(context.Background(), u, leaderProfile(u), []string{"faculty_admin"})
	assert.Nil(t, findEntry(m.Quick, "faculty_admin"))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, "/dashboard", Reverse("dashboard", nil))
	assert.Equal(t, "/attendees/bob/enrollments", Reverse("attendees:enrollments:index", map[string]string{"slug": "bob"}))
	assert.Equal(t, "", Reverse("attendees:enrollments:index", nil), "missing param yields empty url")
	assert.Equal(t, "", Reverse("nope", nil), "unknown route yields empty url")
}

func TestFlattenIndexCoversChildren(t *testing.T) {
	index := FlattenIndex()
	for _, key := range []string{"dashboard", "leader_enrollments", "faculty_new", "admin_quick"} {
		_, ok := index[key]
		assert.True(t, ok, key)
	}
}
