package dashboard

import (
	"strings"

	common_models "go-campfire/internal/common/models"
	"go-campfire/internal/features/user"
)

// Portal describes one dashboard surface: which user types may open it and
// which widget builders populate it, by name.
type Portal struct {
	Key       string   `json:"key"`
	Title     string   `json:"title"`
	UserTypes []string `json:"user_types"`
	Widgets   []string `json:"widgets"`
}

var Portals = map[string]Portal{
	"attendee": {
		Key:       "attendee",
		Title:     "Attendee Dashboard",
		UserTypes: []string{"ATTENDEE"},
		Widgets:   []string{"announcement", "my_schedule", "my_metrics", "quick_actions", "resources"},
	},
	"leader": {
		Key:       "leader",
		Title:     "Leader Dashboard",
		UserTypes: []string{"LEADER"},
		Widgets:   []string{"announcement", "faction_metrics", "faction_roster", "quick_actions", "resources"},
	},
	"faculty": {
		Key:       "faculty",
		Title:     "Faculty Dashboard",
		UserTypes: []string{"FACULTY", "ORGANIZATION_FACULTY", "FACILITY_FACULTY"},
		Widgets:   []string{"announcement", "facility_metrics", "class_list", "quick_actions"},
	},
	"admin": {
		Key:       "admin",
		Title:     "Admin Dashboard",
		UserTypes: []string{"ADMIN"},
		Widgets:   []string{"announcement", "site_metrics", "quick_actions"},
	},
}

// PortalFor returns the requested portal when the user's type is allowed on
// it. Admins may open any portal.
func PortalFor(u *user.User, key string) (Portal, bool) {
	portal, ok := Portals[key]
	if !ok || u == nil {
		return Portal{}, false
	}
	if u.IsAdmin || u.IsSuperuser {
		return portal, true
	}
	userType := strings.ToUpper(string(u.UserType))
	for _, allowed := range portal.UserTypes {
		if allowed == userType {
			return portal, true
		}
	}
	return Portal{}, false
}

// DefaultPortalKey maps a user type to its home portal.
func DefaultPortalKey(u *user.User) string {
	if u == nil {
		return ""
	}
	if u.IsAdmin && u.UserType != common_models.UserTypeLeader && u.UserType != common_models.UserTypeFaculty {
		return "admin"
	}
	switch u.UserType {
	case common_models.UserTypeAttendee:
		return "attendee"
	case common_models.UserTypeLeader:
		return "leader"
	case common_models.UserTypeFaculty, common_models.UserTypeOrganizationFaculty, common_models.UserTypeFacilityFaculty:
		return "faculty"
	case common_models.UserTypeAdmin:
		return "admin"
	}
	return ""
}
