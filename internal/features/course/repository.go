package course

import (
	"context"
	"time"

	"go-campfire/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CourseRepository interface {
	UpsertRequirement(ctx context.Context, req *Requirement) error
	UpsertCourse(ctx context.Context, c *Course) error
	UpsertFacilityClass(ctx context.Context, fc *FacilityClass) error
	FindCourseByName(ctx context.Context, name string) (*Course, error)
	ListFacilityClasses(ctx context.Context, facilityID primitive.ObjectID) ([]FacilityClass, error)
}

type CourseRepositoryImpl struct {
	Requirements    *mongo.Collection
	Courses         *mongo.Collection
	FacilityClasses *mongo.Collection
}

func NewCourseRepository(mongodb *database.MongodbDB) CourseRepository {
	return &CourseRepositoryImpl{
		Requirements:    mongodb.DB.Collection("requirements"),
		Courses:         mongodb.DB.Collection("courses"),
		FacilityClasses: mongodb.DB.Collection("facility_classes"),
	}
}

func (r *CourseRepositoryImpl) UpsertRequirement(ctx context.Context, req *Requirement) error {
	req.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.Requirements, bson.M{"name": req.Name}, req)
}

func (r *CourseRepositoryImpl) UpsertCourse(ctx context.Context, c *Course) error {
	c.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.Courses, bson.M{"name": c.Name}, c)
}

func (r *CourseRepositoryImpl) UpsertFacilityClass(ctx context.Context, fc *FacilityClass) error {
	fc.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.FacilityClasses, bson.M{"name": fc.Name}, fc)
}

func (r *CourseRepositoryImpl) FindCourseByName(ctx context.Context, name string) (*Course, error) {
	var c Course
	if err := r.Courses.FindOne(ctx, bson.M{"name": name}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepositoryImpl) ListFacilityClasses(ctx context.Context, facilityID primitive.ObjectID) ([]FacilityClass, error) {
	cursor, err := r.FacilityClasses.Find(ctx, bson.M{"facility_id": facilityID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []FacilityClass
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}
