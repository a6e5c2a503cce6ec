package organization

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is the tenant root. Labels carries per-organization wording
// overrides keyed like "facility_label"; the breadcrumb builder consults it.
type Organization struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name         string              `json:"name" bson:"name"`
	Slug         string              `json:"slug" bson:"slug"`
	Abbreviation string              `json:"abbreviation" bson:"abbreviation"`
	Description  string              `json:"description,omitempty" bson:"description,omitempty"`
	ParentID     *primitive.ObjectID `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	MaxDepth     int                 `json:"max_depth" bson:"max_depth"`
	Labels       map[string]string   `json:"labels,omitempty" bson:"labels,omitempty"`
	CreatedAt    time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at" bson:"updated_at"`
}
