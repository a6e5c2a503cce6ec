package pagecontext

import (
	"testing"

	common_models "go-campfire/internal/common/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBreadcrumbsRoot(t *testing.T) {
	crumbs := BuildBreadcrumbs("/", nil)
	require.Len(t, crumbs, 1)
	assert.Equal(t, common_models.Breadcrumb{Name: "Home", URL: "/"}, crumbs[0])
}

func TestBuildBreadcrumbsAccumulatesURL(t *testing.T) {
	crumbs := BuildBreadcrumbs("/faction/roster", nil)
	require.Len(t, crumbs, 3)
	assert.Equal(t, "/faction", crumbs[1].URL)
	assert.Equal(t, "/faction/roster", crumbs[2].URL)
	assert.Equal(t, "Factions", crumbs[1].Name, "plain segments are capitalized and pluralized")
	assert.Equal(t, "Rosters", crumbs[2].Name)
}

func TestBuildBreadcrumbsUsesLabelOverrides(t *testing.T) {
	labels := map[string]string{"facility_label": "Camp"}
	crumbs := BuildBreadcrumbs("/facility", labels)
	require.Len(t, crumbs, 2)
	assert.Equal(t, "Camps", crumbs[1].Name, "overridden label is still pluralized")
}

func TestBuildBreadcrumbsSkipsIDSegments(t *testing.T) {
	crumbs := BuildBreadcrumbs("/factions/42", nil)
	require.Len(t, crumbs, 3)
	assert.Equal(t, "42", crumbs[2].Name)
	assert.Equal(t, "/factions/42", crumbs[2].URL)

	crumbs = BuildBreadcrumbs("/factions/summer-eagles", nil)
	assert.Equal(t, "Summer eagles", crumbs[2].Name, "slugs are not pluralized")
}
