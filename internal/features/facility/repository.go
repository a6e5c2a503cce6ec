package facility

import (
	"context"
	"time"

	"go-campfire/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FacilityRepository interface {
	Upsert(ctx context.Context, f *Facility) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Facility, error)
	FindBySlug(ctx context.Context, slug string) (*Facility, error)
	CountDepartments(ctx context.Context, facilityID primitive.ObjectID) (int64, error)
	CountFacultyProfiles(ctx context.Context, facilityID primitive.ObjectID) (int64, error)

	UpsertDepartment(ctx context.Context, d *Department) error
	UpsertQuartersType(ctx context.Context, qt *QuartersType) error
	UpsertQuarters(ctx context.Context, q *Quarters) error

	UpsertFacultyProfile(ctx context.Context, p *FacultyProfile) error
	FindFacultyProfileByUser(ctx context.Context, userID primitive.ObjectID) (*FacultyProfile, error)
}

type FacilityRepositoryImpl struct {
	Facilities      *mongo.Collection
	Departments     *mongo.Collection
	QuartersTypes   *mongo.Collection
	Quarters        *mongo.Collection
	FacultyProfiles *mongo.Collection
}

func NewFacilityRepository(mongodb *database.MongodbDB) FacilityRepository {
	return &FacilityRepositoryImpl{
		Facilities:      mongodb.DB.Collection("facilities"),
		Departments:     mongodb.DB.Collection("departments"),
		QuartersTypes:   mongodb.DB.Collection("quarters_types"),
		Quarters:        mongodb.DB.Collection("quarters"),
		FacultyProfiles: mongodb.DB.Collection("faculty_profiles"),
	}
}

func upsertByName(ctx context.Context, col *mongo.Collection, name string, doc interface{}) error {
	return database.Upsert(ctx, col, bson.M{"name": name}, doc)
}

func (r *FacilityRepositoryImpl) Upsert(ctx context.Context, f *Facility) error {
	f.UpdatedAt = time.Now()
	return upsertByName(ctx, r.Facilities, f.Name, f)
}

func (r *FacilityRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Facility, error) {
	var f Facility
	if err := r.Facilities.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FacilityRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Facility, error) {
	var f Facility
	if err := r.Facilities.FindOne(ctx, bson.M{"slug": slug}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FacilityRepositoryImpl) CountDepartments(ctx context.Context, facilityID primitive.ObjectID) (int64, error) {
	return r.Departments.CountDocuments(ctx, bson.M{"facility_id": facilityID})
}

func (r *FacilityRepositoryImpl) CountFacultyProfiles(ctx context.Context, facilityID primitive.ObjectID) (int64, error) {
	return r.FacultyProfiles.CountDocuments(ctx, bson.M{"facility_id": facilityID})
}

func (r *FacilityRepositoryImpl) UpsertDepartment(ctx context.Context, d *Department) error {
	d.UpdatedAt = time.Now()
	return upsertByName(ctx, r.Departments, d.Name, d)
}

func (r *FacilityRepositoryImpl) UpsertQuartersType(ctx context.Context, qt *QuartersType) error {
	qt.UpdatedAt = time.Now()
	return upsertByName(ctx, r.QuartersTypes, qt.Name, qt)
}

func (r *FacilityRepositoryImpl) UpsertQuarters(ctx context.Context, q *Quarters) error {
	q.UpdatedAt = time.Now()
	return upsertByName(ctx, r.Quarters, q.Name, q)
}

func (r *FacilityRepositoryImpl) UpsertFacultyProfile(ctx context.Context, p *FacultyProfile) error {
	p.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.FacultyProfiles, bson.M{"user_id": p.UserID}, p)
}

func (r *FacilityRepositoryImpl) FindFacultyProfileByUser(ctx context.Context, userID primitive.ObjectID) (*FacultyProfile, error) {
	var p FacultyProfile
	if err := r.FacultyProfiles.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
