package enrollment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganizationEnrollment is a time-bounded program window for an organization
// (e.g. "Summer 2025"). Facility and faction enrollments hang off it.
type OrganizationEnrollment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	OrganizationID primitive.ObjectID `json:"organization_id" bson:"organization_id"`
	Start          time.Time          `json:"start" bson:"start"`
	End            time.Time          `json:"end" bson:"end"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

type OrganizationCourse struct {
	ID                       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                     string             `json:"name" bson:"name"`
	CourseID                 primitive.ObjectID `json:"course_id" bson:"course_id"`
	OrganizationEnrollmentID primitive.ObjectID `json:"organization_enrollment_id" bson:"organization_enrollment_id"`
	CreatedAt                time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt                time.Time          `json:"updated_at" bson:"updated_at"`
}

type FacilityEnrollment struct {
	ID                       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                     string             `json:"name" bson:"name"`
	FacilityID               primitive.ObjectID `json:"facility_id" bson:"facility_id"`
	OrganizationEnrollmentID primitive.ObjectID `json:"organization_enrollment_id" bson:"organization_enrollment_id"`
	Start                    time.Time          `json:"start" bson:"start"`
	End                      time.Time          `json:"end" bson:"end"`
	CreatedAt                time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt                time.Time          `json:"updated_at" bson:"updated_at"`
}

// Week and Period carve a facility enrollment into schedulable slots.
type Week struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                 string             `json:"name" bson:"name"`
	FacilityEnrollmentID primitive.ObjectID `json:"facility_enrollment_id" bson:"facility_enrollment_id"`
	Start                time.Time          `json:"start" bson:"start"`
	End                  time.Time          `json:"end" bson:"end"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at" bson:"updated_at"`
}

type Period struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                 string             `json:"name" bson:"name"`
	FacilityEnrollmentID primitive.ObjectID `json:"facility_enrollment_id" bson:"facility_enrollment_id"`
	Order                int                `json:"order" bson:"order"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at" bson:"updated_at"`
}

type FactionEnrollment struct {
	ID                   primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name                 string              `json:"name" bson:"name"`
	FactionID            primitive.ObjectID  `json:"faction_id" bson:"faction_id"`
	FacilityEnrollmentID primitive.ObjectID  `json:"facility_enrollment_id" bson:"facility_enrollment_id"`
	WeekID               *primitive.ObjectID `json:"week_id,omitempty" bson:"week_id,omitempty"`
	QuartersID           *primitive.ObjectID `json:"quarters_id,omitempty" bson:"quarters_id,omitempty"`
	CreatedAt            time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at" bson:"updated_at"`
}

type FacilityClassEnrollment struct {
	ID                   primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	FacilityClassID      primitive.ObjectID  `json:"facility_class_id" bson:"facility_class_id"`
	FacilityEnrollmentID primitive.ObjectID  `json:"facility_enrollment_id" bson:"facility_enrollment_id"`
	PeriodID             *primitive.ObjectID `json:"period_id,omitempty" bson:"period_id,omitempty"`
	CreatedAt            time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at" bson:"updated_at"`
}

// LeaderEnrollment, AttendeeEnrollment and FacultyEnrollment are the personal
// assignment rows hanging off a faction or facility enrollment.
type LeaderEnrollment struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	LeaderProfileID     primitive.ObjectID `json:"leader_profile_id" bson:"leader_profile_id"`
	FactionEnrollmentID primitive.ObjectID `json:"faction_enrollment_id" bson:"faction_enrollment_id"`
	CreatedAt           time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at" bson:"updated_at"`
}

type AttendeeEnrollment struct {
	ID                  primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	AttendeeProfileID   primitive.ObjectID  `json:"attendee_profile_id" bson:"attendee_profile_id"`
	FactionEnrollmentID primitive.ObjectID  `json:"faction_enrollment_id" bson:"faction_enrollment_id"`
	QuartersID          *primitive.ObjectID `json:"quarters_id,omitempty" bson:"quarters_id,omitempty"`
	CreatedAt           time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at" bson:"updated_at"`
}

type FacultyEnrollment struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FacultyProfileID     primitive.ObjectID `json:"faculty_profile_id" bson:"faculty_profile_id"`
	FacilityEnrollmentID primitive.ObjectID `json:"facility_enrollment_id" bson:"facility_enrollment_id"`
	CreatedAt            time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at" bson:"updated_at"`
}

// ActiveEnrollment records which enrollment context a user is currently
// working in. A zero-ID row acts as the per-user placeholder: page context
// must never fail just because a user has not picked one yet.
type ActiveEnrollment struct {
	ID                   primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID               primitive.ObjectID  `json:"user_id" bson:"user_id"`
	FactionEnrollmentID  *primitive.ObjectID `json:"faction_enrollment_id,omitempty" bson:"faction_enrollment_id,omitempty"`
	FacilityEnrollmentID *primitive.ObjectID `json:"facility_enrollment_id,omitempty" bson:"facility_enrollment_id,omitempty"`
	UpdatedAt            time.Time           `json:"updated_at" bson:"updated_at"`
}
