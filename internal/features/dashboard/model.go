package dashboard

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DashboardLayout stores one user's arrangement for one portal. Layout lists
// widget keys in display order; HiddenWidgets lists keys the user dismissed.
// Widgets a portal produces that the layout does not mention still render,
// after the ordered ones.
type DashboardLayout struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"user_id" bson:"user_id"`
	PortalKey     string             `json:"portal_key" bson:"portal_key"`
	Layout        []string           `json:"layout" bson:"layout"`
	HiddenWidgets []string           `json:"hidden_widgets" bson:"hidden_widgets"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
