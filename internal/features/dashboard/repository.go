package dashboard

import (
	"context"
	"errors"
	"time"

	"go-campfire/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DashboardRepository interface {
	// FindLayout returns nil without error when the user has no saved
	// layout for the portal.
	FindLayout(ctx context.Context, userID primitive.ObjectID, portalKey string) (*DashboardLayout, error)
	SaveLayout(ctx context.Context, layout *DashboardLayout) error
}

type DashboardRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewDashboardRepository(mongodb *database.MongodbDB) DashboardRepository {
	return &DashboardRepositoryImpl{
		Collection: mongodb.DB.Collection("dashboard_layouts"),
	}
}

func (r *DashboardRepositoryImpl) FindLayout(ctx context.Context, userID primitive.ObjectID, portalKey string) (*DashboardLayout, error) {
	var layout DashboardLayout
	err := r.Collection.FindOne(ctx, bson.M{"user_id": userID, "portal_key": portalKey}).Decode(&layout)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &layout, nil
}

func (r *DashboardRepositoryImpl) SaveLayout(ctx context.Context, layout *DashboardLayout) error {
	layout.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.Collection,
		bson.M{"user_id": layout.UserID, "portal_key": layout.PortalKey},
		layout,
	)
}
