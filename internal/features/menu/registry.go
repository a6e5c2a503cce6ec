package menu

import (
	"strings"

	"go-campfire/internal/features/user"
)

// Condition predicates are a closed registry resolved at startup; menu
// definitions reference them by name so the registry stays plain data.
var conditions = map[string]func(*user.User) bool{
	"is_admin": func(u *user.User) bool {
		return u != nil && u.IsAdmin
	},
	"is_leader_admin":         user.IsLeaderAdmin,
	"is_faculty_admin":        user.IsFacultyAdmin,
	"is_organization_faculty": user.IsOrganizationFaculty,
}

// Registry holds the static navigation tree per user type. COMMON applies to
// everyone; an unknown user type gets COMMON only. Treat as immutable config.
var Registry = map[string][]Entry{
	"COMMON": {
		{
			Key:     "dashboard",
			Label:   "Dashboard",
			Icon:    "fas fa-fire",
			URLName: "dashboard",
		},
	},
	"ATTENDEE": {
		{
			Key:   "attendee_profile",
			Label: "My Profile",
			Icon:  "fas fa-user",
			Children: []Entry{
				{
					Key:           "attendee_schedule",
					Label:         "My Schedule",
					Icon:          "fas fa-calendar",
					URLName:       "attendees:enrollments:index",
					DynamicKwargs: map[string]string{"slug": "profile.slug"},
				},
				{
					Key:           "attendee_enrollments",
					Label:         "My Enrollments",
					Icon:          "fas fa-user-check",
					URLName:       "attendees:enrollments:index",
					DynamicKwargs: map[string]string{"slug": "profile.slug"},
				},
				{
					Key:     "attendee_resources",
					Label:   "Resources",
					Icon:    "fas fa-book",
					URLName: "resources",
				},
			},
		},
		{
			Key:           "attendee_quick",
			Label:         "My Schedule",
			Icon:          "fas fa-calendar",
			URLName:       "attendees:enrollments:index",
			DynamicKwargs: map[string]string{"slug": "profile.slug"},
			Group:         "quick",
		},
	},
	"LEADER": {
		{
			Key:   "faction_mgmt",
			Label: "Faction Mgmt",
			Icon:  "fas fa-users",
			Children: []Entry{
				{
					Key:     "leader_roster",
					Label:   "View Roster",
					Icon:    "fas fa-users",
					URLName: "leaders:index",
				},
				{
					Key:           "leader_enrollments",
					Label:         "Manage Enrollments",
					Icon:          "fas fa-calendar-alt",
					URLName:       "factions:enrollments:index",
					DynamicKwargs: map[string]string{"slug": "profile.faction.slug"},
				},
				{
					Key:     "leader_resources",
					Label:   "Faction Resources",
					Icon:    "fas fa-book",
					URLName: "resources",
				},
			},
		},
		{
			Key:     "leader_quick",
			Label:   "Faction Dashboard",
			Icon:    "fas fa-bullseye",
			URLName: "leaders:dashboard",
			Group:   "quick",
		},
	},
	"FACULTY": {
		{
			Key:   "faculty_portal",
			Label: "Faculty Portal",
			Icon:  "fas fa-chalkboard-teacher",
			Children: []Entry{
				{
					Key:     "faculty_schedule",
					Label:   "My Schedule",
					Icon:    "fas fa-calendar",
					URLName: "facultys:manage",
				},
				{
					Key:     "faculty_enrollments",
					Label:   "My Enrollments",
					Icon:    "fas fa-user-check",
					URLName: "facultys:manage",
				},
			},
		},
		{
			Key:       "faculty_admin",
			Label:     "Faculty Admin",
			Icon:      "fas fa-user-cog",
			Condition: "is_admin",
			Children: []Entry{
				{
					Key:           "faculty_new",
					Label:         "New Faculty",
					Icon:          "fas fa-plus-square",
					URLName:       "facilities:facultys:new",
					DynamicKwargs: map[string]string{"facility_slug": "profile.facility.slug"},
				},
				{
					Key:           "faculty_manage",
					Label:         "Manage Faculty",
					Icon:          "fas fa-users-cog",
					URLName:       "facilities:faculty:manage",
					DynamicKwargs: map[string]string{"facility_slug": "profile.facility.slug"},
				},
				{
					Key:     "faculty_reports",
					Label:   "Reports",
					Icon:    "fas fa-chart-bar",
					URLName: "reports:list_user_reports",
				},
			},
		},
		{
			Key:       "org_overview",
			Label:     "Organization Overview",
			Icon:      "fas fa-sitemap",
			URLName:   "organizations:index",
			Condition: "is_organization_faculty",
		},
		{
			Key:     "faculty_quick",
			Label:   "My Faculty Portal",
			Icon:    "fas fa-graduation-cap",
			URLName: "facultys:manage",
			Group:   "quick",
		},
	},
	"ADMIN": {
		{
			Key:   "admin_tools",
			Label: "Admin",
			Icon:  "fas fa-tools",
			Children: []Entry{
				{
					Key:     "admin_site",
					Label:   "Site Admin",
					Icon:    "fas fa-shield-alt",
					URLName: "admin:index",
				},
				{
					Key:     "admin_users",
					Label:   "User Management",
					Icon:    "fas fa-users-cog",
					URLName: "leaders:index",
				},
			},
		},
		{
			Key:     "admin_quick",
			Label:   "Admin Site",
			Icon:    "fas fa-lock",
			URLName: "admin:index",
			Group:   "quick",
		},
	},
}

// TopLinks are the static header links every page shows.
var TopLinks = []TopLink{
	{Label: "Help", URL: "/help"},
	{Label: "Contact", URL: "/contact"},
}

func init() {
	// Organization-level faculty see the faculty menu.
	Registry["ORGANIZATION_FACULTY"] = Registry["FACULTY"]
}

// DefinitionsForUser returns COMMON entries plus the entries for the user's
// upper-cased type. Unknown types contribute nothing beyond COMMON.
func DefinitionsForUser(u *user.User) []Entry {
	userType := "OTHER"
	if u != nil {
		userType = strings.ToUpper(string(u.UserType))
	}
	entries := []Entry{}
	entries = append(entries, Registry["COMMON"]...)
	entries = append(entries, Registry[userType]...)
	return entries
}

// FlattenIndex builds a key -> definition index across every registry entry
// including nested children. Duplicate keys are last-write-wins. Favorites
// are resolved through this index.
func FlattenIndex() map[string]Entry {
	index := map[string]Entry{}
	var walk func(entries []Entry)
	walk = func(entries []Entry) {
		for _, entry := range entries {
			if entry.Key != "" {
				index[entry.Key] = entry
			}
			walk(entry.Children)
		}
	}
	for _, entries := range Registry {
		walk(entries)
	}
	return index
}
