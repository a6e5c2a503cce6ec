package dashboard

import (
	"testing"

	common_models "go-campfire/internal/common/models"
	"go-campfire/internal/features/user"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func namedWidget(key string, priority int) *Widget {
	w := NewTextWidget(key, "")
	w.Key = key
	w.Priority = priority
	return w
}

func keysOf(widgets []*Widget) []string {
	keys := make([]string, 0, len(widgets))
	for _, w := range widgets {
		keys = append(keys, w.Key)
	}
	return keys
}

func TestApplyLayoutNilKeepsPriorityOrder(t *testing.T) {
	widgets := []*Widget{namedWidget("a", 1), namedWidget("b", 5), namedWidget("c", 10)}
	got := applyLayout(widgets, nil)
	assert.Equal(t, []string{"a", "b", "c"}, keysOf(got))
}

func TestApplyLayoutHiddenFilteredFirst(t *testing.T) {
	widgets := []*Widget{namedWidget("a", 1), namedWidget("b", 5), namedWidget("c", 10)}
	layout := &DashboardLayout{HiddenWidgets: []string{"b"}}
	got := applyLayout(widgets, layout)
	assert.Equal(t, []string{"a", "c"}, keysOf(got))
}

func TestApplyLayoutOrdersListedThenUnlisted(t *testing.T) {
	widgets := []*Widget{
		namedWidget("a", 1),
		namedWidget("b", 5),
		namedWidget("c", 10),
		namedWidget("d", 20),
	}
	layout := &DashboardLayout{Layout: []string{"c", "a"}}

	got := applyLayout(widgets, layout)
	// Listed keys in layout order, then the rest in priority order.
	assert.Equal(t, []string{"c", "a", "b", "d"}, keysOf(got))
}

func TestApplyLayoutIgnoresStaleLayoutKeys(t *testing.T) {
	widgets := []*Widget{namedWidget("a", 1), namedWidget("b", 5)}
	layout := &DashboardLayout{Layout: []string{"gone", "b"}, HiddenWidgets: []string{"also_gone"}}

	got := applyLayout(widgets, layout)
	assert.Equal(t, []string{"b", "a"}, keysOf(got))
}

func TestPortalForEnforcesUserType(t *testing.T) {
	leader := &user.User{ID: primitive.NewObjectID(), UserType: common_models.UserTypeLeader}

	_, ok := PortalFor(leader, "leader")
	assert.True(t, ok)

	_, ok = PortalFor(leader, "admin")
	assert.False(t, ok, "leaders cannot open the admin portal")

	_, ok = PortalFor(leader, "no-such-portal")
	assert.False(t, ok)

	admin := &user.User{ID: primitive.NewObjectID(), UserType: common_models.UserTypeAdmin, IsAdmin: true}
	_, ok = PortalFor(admin, "leader")
	assert.True(t, ok, "admins may open any portal")
}

func TestDefaultPortalKey(t *testing.T) {
	assert.Equal(t, "attendee", DefaultPortalKey(&user.User{UserType: common_models.UserTypeAttendee}))
	assert.Equal(t, "leader", DefaultPortalKey(&user.User{UserType: common_models.UserTypeLeader}))
	assert.Equal(t, "faculty", DefaultPortalKey(&user.User{UserType: common_models.UserTypeOrganizationFaculty}))
	assert.Equal(t, "admin", DefaultPortalKey(&user.User{UserType: common_models.UserTypeAdmin}))
	assert.Equal(t, "", DefaultPortalKey(nil))
}
