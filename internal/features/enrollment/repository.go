package enrollment

import (
	"context"
	"time"

	"go-campfire/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EnrollmentRepository interface {
	UpsertOrganizationEnrollment(ctx context.Context, e *OrganizationEnrollment) error
	UpsertOrganizationCourse(ctx context.Context, c *OrganizationCourse) error
	UpsertFacilityEnrollment(ctx context.Context, e *FacilityEnrollment) error
	UpsertWeek(ctx context.Context, w *Week) error
	UpsertPeriod(ctx context.Context, p *Period) error
	UpsertFactionEnrollment(ctx context.Context, e *FactionEnrollment) error
	UpsertFacilityClassEnrollment(ctx context.Context, e *FacilityClassEnrollment) error
	UpsertLeaderEnrollment(ctx context.Context, e *LeaderEnrollment) error
	UpsertAttendeeEnrollment(ctx context.Context, e *AttendeeEnrollment) error
	UpsertFacultyEnrollment(ctx context.Context, e *FacultyEnrollment) error

	FindActiveEnrollment(ctx context.Context, id primitive.ObjectID) (*ActiveEnrollment, error)
	FindActiveEnrollmentByUser(ctx context.Context, userID primitive.ObjectID) (*ActiveEnrollment, error)
	SaveActiveEnrollment(ctx context.Context, e *ActiveEnrollment) error

	ListFactionEnrollments(ctx context.Context, factionID primitive.ObjectID) ([]FactionEnrollment, error)
	ListFacilityEnrollmentsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]FacilityEnrollment, error)
	ListFacilityEnrollments(ctx context.Context, facilityID primitive.ObjectID) ([]FacilityEnrollment, error)
	CountAttendeeEnrollments(ctx context.Context, attendeeProfileID primitive.ObjectID) (int64, error)
	CountLeaderEnrollments(ctx context.Context, leaderProfileID primitive.ObjectID) (int64, error)
	CountFacultyEnrollments(ctx context.Context, facultyProfileID primitive.ObjectID) (int64, error)
	CountFactionEnrollments(ctx context.Context, factionID primitive.ObjectID) (int64, error)
	ListAttendeeEnrollmentsByFaction(ctx context.Context, factionID primitive.ObjectID) ([]AttendeeEnrollment, error)
}

type EnrollmentRepositoryImpl struct {
	OrganizationEnrollments  *mongo.Collection
	OrganizationCourses      *mongo.Collection
	FacilityEnrollments      *mongo.Collection
	Weeks                    *mongo.Collection
	Periods                  *mongo.Collection
	FactionEnrollments       *mongo.Collection
	FacilityClassEnrollments *mongo.Collection
	LeaderEnrollments        *mongo.Collection
	AttendeeEnrollments      *mongo.Collection
	FacultyEnrollments       *mongo.Collection
	ActiveEnrollments        *mongo.Collection
}

func NewEnrollmentRepository(mongodb *database.MongodbDB) EnrollmentRepository {
	return &EnrollmentRepositoryImpl{
		OrganizationEnrollments:  mongodb.DB.Collection("organization_enrollments"),
		OrganizationCourses:      mongodb.DB.Collection("organization_courses"),
		FacilityEnrollments:      mongodb.DB.Collection("facility_enrollments"),
		Weeks:                    mongodb.DB.Collection("weeks"),
		Periods:                  mongodb.DB.Collection("periods"),
		FactionEnrollments:       mongodb.DB.Collection("faction_enrollments"),
		FacilityClassEnrollments: mongodb.DB.Collection("facility_class_enrollments"),
		LeaderEnrollments:        mongodb.DB.Collection("leader_enrollments"),
		AttendeeEnrollments:      mongodb.DB.Collection("attendee_enrollments"),
		FacultyEnrollments:       mongodb.DB.Collection("faculty_enrollments"),
		ActiveEnrollments:        mongodb.DB.Collection("active_enrollments"),
	}
}

func (r *EnrollmentRepositoryImpl) UpsertOrganizationEnrollment(ctx context.Context, e *OrganizationEnrollment) error {
	e.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.OrganizationEnrollments, bson.M{"name": e.Name}, e)
}

func (r *EnrollmentRepositoryImpl) UpsertOrganizationCourse(ctx context.Context, c *OrganizationCourse) error {
	c.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.OrganizationCourses, bson.M{"name": c.Name}, c)
}

func (r *EnrollmentRepositoryImpl) UpsertFacilityEnrollment(ctx context.Context, e *FacilityEnrollment) error {
	e.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.FacilityEnrollments, bson.M{"name": e.Name}, e)
}

func (r *EnrollmentRepositoryImpl) UpsertWeek(ctx context.Context, w *Week) error {
	w.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.Weeks, bson.M{"name": w.Name, "facility_enrollment_id": w.FacilityEnrollmentID}, w)
}

func (r *EnrollmentRepositoryImpl) UpsertPeriod(ctx context.Context, p *Period) error {
	p.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.Periods, bson.M{"name": p.Name, "facility_enrollment_id": p.FacilityEnrollmentID}, p)
}

func (r *EnrollmentRepositoryImpl) UpsertFactionEnrollment(ctx context.Context, e *FactionEnrollment) error {
	e.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.FactionEnrollments, bson.M{"name": e.Name}, e)
}

func (r *EnrollmentRepositoryImpl) UpsertFacilityClassEnrollment(ctx context.Context, e *FacilityClassEnrollment) error {
	e.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.FacilityClassEnrollments, bson.M{
		"facility_class_id":      e.FacilityClassID,
		"facility_enrollment_id": e.FacilityEnrollmentID,
	}, e)
}

func (r *EnrollmentRepositoryImpl) UpsertLeaderEnrollment(ctx context.Context, e *LeaderEnrollment) error {
	e.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.LeaderEnrollments, bson.M{
		"leader_profile_id":     e.LeaderProfileID,
		"faction_enrollment_id": e.FactionEnrollmentID,
	}, e)
}

func (r *EnrollmentRepositoryImpl) UpsertAttendeeEnrollment(ctx context.Context, e *AttendeeEnrollment) error {
	e.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.AttendeeEnrollments, bson.M{
		"attendee_profile_id":   e.AttendeeProfileID,
		"faction_enrollment_id": e.FactionEnrollmentID,
	}, e)
}

func (r *EnrollmentRepositoryImpl) UpsertFacultyEnrollment(ctx context.Context, e *FacultyEnrollment) error {
	e.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.FacultyEnrollments, bson.M{
		"faculty_profile_id":     e.FacultyProfileID,
		"facility_enrollment_id": e.FacilityEnrollmentID,
	}, e)
}

func (r *EnrollmentRepositoryImpl) FindActiveEnrollment(ctx context.Context, id primitive.ObjectID) (*ActiveEnrollment, error) {
	var e ActiveEnrollment
	if err := r.ActiveEnrollments.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentRepositoryImpl) FindActiveEnrollmentByUser(ctx context.Context, userID primitive.ObjectID) (*ActiveEnrollment, error) {
	var e ActiveEnrollment
	if err := r.ActiveEnrollments.FindOne(ctx, bson.M{"user_id": userID}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentRepositoryImpl) SaveActiveEnrollment(ctx context.Context, e *ActiveEnrollment) error {
	e.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.ActiveEnrollments, bson.M{"user_id": e.UserID}, e)
}

func (r *EnrollmentRepositoryImpl) ListFactionEnrollments(ctx context.Context, factionID primitive.ObjectID) ([]FactionEnrollment, error) {
	cursor, err := r.FactionEnrollments.Find(ctx, bson.M{"faction_id": factionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []FactionEnrollment
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EnrollmentRepositoryImpl) ListFacilityEnrollmentsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]FacilityEnrollment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.FacilityEnrollments.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []FacilityEnrollment
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EnrollmentRepositoryImpl) ListFacilityEnrollments(ctx context.Context, facilityID primitive.ObjectID) ([]FacilityEnrollment, error) {
	cursor, err := r.FacilityEnrollments.Find(ctx, bson.M{"facility_id": facilityID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []FacilityEnrollment
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EnrollmentRepositoryImpl) CountAttendeeEnrollments(ctx context.Context, attendeeProfileID primitive.ObjectID) (int64, error) {
	return r.AttendeeEnrollments.CountDocuments(ctx, bson.M{"attendee_profile_id": attendeeProfileID})
}

func (r *EnrollmentRepositoryImpl) CountLeaderEnrollments(ctx context.Context, leaderProfileID primitive.ObjectID) (int64, error) {
	return r.LeaderEnrollments.CountDocuments(ctx, bson.M{"leader_profile_id": leaderProfileID})
}

func (r *EnrollmentRepositoryImpl) CountFacultyEnrollments(ctx context.Context, facultyProfileID primitive.ObjectID) (int64, error) {
	return r.FacultyEnrollments.CountDocuments(ctx, bson.M{"faculty_profile_id": facultyProfileID})
}

func (r *EnrollmentRepositoryImpl) CountFactionEnrollments(ctx context.Context, factionID primitive.ObjectID) (int64, error) {
	return r.FactionEnrollments.CountDocuments(ctx, bson.M{"faction_id": factionID})
}

func (r *EnrollmentRepositoryImpl) ListAttendeeEnrollmentsByFaction(ctx context.Context, factionID primitive.ObjectID) ([]AttendeeEnrollment, error) {
	factionEnrollments, err := r.ListFactionEnrollments(ctx, factionID)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(factionEnrollments))
	for _, fe := range factionEnrollments {
		ids = append(ids, fe.ID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.AttendeeEnrollments.Find(ctx, bson.M{"faction_enrollment_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []AttendeeEnrollment
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
