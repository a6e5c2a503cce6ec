package models

import "time"

type ContextKey string

const (
	PortalKey ContextKey = "portal"
)

// UserType drives menu resolution and portal access. Unrecognized values
// fall back to the COMMON-only menu, never an error.
type UserType string

const (
	UserTypeAttendee            UserType = "ATTENDEE"
	UserTypeLeader              UserType = "LEADER"
	UserTypeFaculty             UserType = "FACULTY"
	UserTypeAdmin               UserType = "ADMIN"
	UserTypeOrganizationFaculty UserType = "ORGANIZATION_FACULTY"
	UserTypeFacilityFaculty     UserType = "FACILITY_FACULTY"
	UserTypeOther               UserType = "OTHER"
)

// ColorScheme is the fixed site palette injected into every page context.
type ColorScheme struct {
	Text               string `json:"text"`
	BgLt               string `json:"bg_lt"`
	BgDk               string `json:"bg_dk"`
	SecondaryHighlight string `json:"secondary_highlight"`
	CallToAction       string `json:"call_to_action"`
	Primary            string `json:"primary"`
}

// Log is the shape event logs take in the logs collection.
type Log struct {
	Action       string                 `bson:"action" json:"action"`
	Message      string                 `bson:"message" json:"message"`
	ActorID      string                 `bson:"actor_id,omitempty" json:"actor_id,omitempty"`
	LogLevelId   int                    `bson:"log_level_id" json:"log_level_id"`
	Extra        map[string]interface{} `bson:"extra,omitempty" json:"extra,omitempty"`
	CreatedOnUtc time.Time              `bson:"created_on_utc" json:"created_on_utc"`
}

// InfoRowItem is one cached metric tuple rendered in the dashboard info row.
type InfoRowItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Count int64  `json:"count"`
	Class string `json:"class"`
	Style string `json:"style"`
}

// Breadcrumb is one segment of the generated breadcrumb trail.
type Breadcrumb struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
