package course

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Requirement struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type Course struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name"`
	Slug           string               `json:"slug" bson:"slug"`
	RequirementIDs []primitive.ObjectID `json:"requirement_ids,omitempty" bson:"requirement_ids,omitempty"`
	CreatedAt      time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at" bson:"updated_at"`
}

// FacilityClass is a course offered at a facility during an enrollment window.
type FacilityClass struct {
	ID                   primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name                 string              `json:"name" bson:"name"`
	CourseID             primitive.ObjectID  `json:"course_id" bson:"course_id"`
	FacilityID           primitive.ObjectID  `json:"facility_id" bson:"facility_id"`
	DepartmentID         *primitive.ObjectID `json:"department_id,omitempty" bson:"department_id,omitempty"`
	FacilityEnrollmentID primitive.ObjectID  `json:"facility_enrollment_id" bson:"facility_enrollment_id"`
	MaxEnrollment        int                 `json:"max_enrollment" bson:"max_enrollment"`
	CreatedAt            time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at" bson:"updated_at"`
}
