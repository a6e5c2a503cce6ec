package user

import (
	"time"

	common_models "go-campfire/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID          primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	Username    string                 `json:"username" bson:"username"`
	Email       string                 `json:"email" bson:"email"`
	FirstName   string                 `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName    string                 `json:"last_name,omitempty" bson:"last_name,omitempty"`
	UserType    common_models.UserType `json:"user_type" bson:"user_type"`
	IsAdmin     bool                   `json:"is_admin" bson:"is_admin"`
	IsSuperuser bool                   `json:"is_superuser" bson:"is_superuser"`
	Status      string                 `json:"status" bson:"status"` // active, inactive, suspended
	CreatedAt   time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at" bson:"updated_at"`
}

// IsLeaderAdmin reports whether the user is an admin leader (runs a faction).
func IsLeaderAdmin(u *User) bool {
	return u != nil && u.UserType == common_models.UserTypeLeader && u.IsAdmin
}

// IsFacultyAdmin reports whether the user is an admin faculty member.
func IsFacultyAdmin(u *User) bool {
	return u != nil && u.UserType == common_models.UserTypeFaculty && u.IsAdmin
}

// IsOrganizationFaculty reports whether the user works at the organization level.
func IsOrganizationFaculty(u *User) bool {
	return u != nil && u.UserType == common_models.UserTypeOrganizationFaculty
}
