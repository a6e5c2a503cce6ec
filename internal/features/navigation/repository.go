package navigation

import (
	"context"
	"errors"
	"time"

	"go-campfire/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NavigationRepository interface {
	// GetOrCreate returns the user's preference row, creating an empty one
	// on first access.
	GetOrCreate(ctx context.Context, userID primitive.ObjectID) (*NavigationPreference, error)
	Save(ctx context.Context, pref *NavigationPreference) error
}

type NavigationRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewNavigationRepository(mongodb *database.MongodbDB) NavigationRepository {
	return &NavigationRepositoryImpl{
		Collection: mongodb.DB.Collection("navigation_preferences"),
	}
}

func (r *NavigationRepositoryImpl) GetOrCreate(ctx context.Context, userID primitive.ObjectID) (*NavigationPreference, error) {
	var pref NavigationPreference
	err := r.Collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&pref)
	if err == nil {
		return &pref, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	pref = NavigationPreference{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Favorites: []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := r.Collection.InsertOne(ctx, pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *NavigationRepositoryImpl) Save(ctx context.Context, pref *NavigationPreference) error {
	pref.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.Collection, bson.M{"user_id": pref.UserID}, pref)
}
