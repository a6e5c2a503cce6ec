package sync

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyncLog records one roster sync run against the legacy registration
// database.
type SyncLog struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StartTime      time.Time          `json:"start_time" bson:"start_time"`
	EndTime        time.Time          `json:"end_time" bson:"end_time"`
	Status         string             `json:"status" bson:"status"` // in_progress, success, failed
	ProcessedCount int                `json:"processed_count" bson:"processed_count"`
	Error          string             `json:"error,omitempty" bson:"error,omitempty"`
}

// LegacyCamper is one row pulled from the legacy registration system.
type LegacyCamper struct {
	ExternalID  string
	FirstName   string
	LastName    string
	Email       string
	FactionName string
}
