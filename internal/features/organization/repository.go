package organization

import (
	"context"
	"time"

	"go-campfire/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrganizationRepository interface {
	Upsert(ctx context.Context, org *Organization) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Organization, error)
	FindByName(ctx context.Context, name string) (*Organization, error)
	FindBySlug(ctx context.Context, slug string) (*Organization, error)
	// FindFirst returns the lowest-id organization; the placeholder profile
	// for users without a profile row is bound to it.
	FindFirst(ctx context.Context) (*Organization, error)
	List(ctx context.Context) ([]Organization, error)
}

type OrganizationRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewOrganizationRepository(mongodb *database.MongodbDB) OrganizationRepository {
	return &OrganizationRepositoryImpl{
		Collection: mongodb.DB.Collection("organizations"),
	}
}

func (r *OrganizationRepositoryImpl) Upsert(ctx context.Context, org *Organization) error {
	org.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.Collection, bson.M{"name": org.Name}, org)
}

func (r *OrganizationRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Organization, error) {
	var org Organization
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) FindByName(ctx context.Context, name string) (*Organization, error) {
	var org Organization
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Organization, error) {
	var org Organization
	err := r.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) FindFirst(ctx context.Context) (*Organization, error) {
	var org Organization
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	err := r.Collection.FindOne(ctx, bson.M{}, opts).Decode(&org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) List(ctx context.Context) ([]Organization, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orgs []Organization
	if err = cursor.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}
