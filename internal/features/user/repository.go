package user

import (
	"context"
	"time"

	"go-campfire/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Upsert(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}

type UserRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewUserRepository(mongodb *database.MongodbDB) UserRepository {
	return &UserRepositoryImpl{
		Collection: mongodb.DB.Collection("users"),
	}
}

func (r *UserRepositoryImpl) Upsert(ctx context.Context, u *User) error {
	u.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.Collection, bson.M{"username": u.Username}, u)
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	var u User
	if err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	if err := r.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
