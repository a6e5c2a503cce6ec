package facility

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Facility is a physical site hosting sessions.
type Facility struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Slug           string             `json:"slug" bson:"slug"`
	OrganizationID primitive.ObjectID `json:"organization_id" bson:"organization_id"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

type Department struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Slug       string             `json:"slug" bson:"slug"`
	FacilityID primitive.ObjectID `json:"facility_id" bson:"facility_id"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

type QuartersType struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type Quarters struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	FacilityID primitive.ObjectID `json:"facility_id" bson:"facility_id"`
	TypeID     primitive.ObjectID `json:"type_id" bson:"type_id"`
	Capacity   int                `json:"capacity" bson:"capacity"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// FacultyProfile links a faculty user to the facility they teach at.
type FacultyProfile struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID         primitive.ObjectID  `json:"user_id" bson:"user_id"`
	Slug           string              `json:"slug" bson:"slug"`
	FacilityID     primitive.ObjectID  `json:"facility_id" bson:"facility_id"`
	OrganizationID primitive.ObjectID  `json:"organization_id" bson:"organization_id"`
	DepartmentID   *primitive.ObjectID `json:"department_id,omitempty" bson:"department_id,omitempty"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}
