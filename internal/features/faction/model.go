package faction

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Faction is a cohort of attendees led by a leader, scoped to an organization.
type Faction struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name           string              `json:"name" bson:"name"`
	Slug           string              `json:"slug" bson:"slug"`
	OrganizationID primitive.ObjectID  `json:"organization_id" bson:"organization_id"`
	ParentID       *primitive.ObjectID `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}

// LeaderProfile links a leader user to the faction they run.
type LeaderProfile struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID         primitive.ObjectID  `json:"user_id" bson:"user_id"`
	Slug           string              `json:"slug" bson:"slug"`
	FactionID      *primitive.ObjectID `json:"faction_id,omitempty" bson:"faction_id,omitempty"`
	OrganizationID primitive.ObjectID  `json:"organization_id" bson:"organization_id"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}

// AttendeeProfile links an attendee user to their faction. ExternalID ties
// the row back to the legacy registration system for roster sync upserts.
type AttendeeProfile struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID         primitive.ObjectID  `json:"user_id" bson:"user_id"`
	Slug           string              `json:"slug" bson:"slug"`
	FactionID      *primitive.ObjectID `json:"faction_id,omitempty" bson:"faction_id,omitempty"`
	OrganizationID primitive.ObjectID  `json:"organization_id" bson:"organization_id"`
	ExternalID     string              `json:"external_id,omitempty" bson:"external_id,omitempty"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}
