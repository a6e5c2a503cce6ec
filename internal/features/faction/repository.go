package faction

import (
	"context"
	"time"

	"go-campfire/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FactionRepository interface {
	Upsert(ctx context.Context, f *Faction) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Faction, error)
	FindBySlug(ctx context.Context, slug string) (*Faction, error)
	CountChildren(ctx context.Context, factionID primitive.ObjectID) (int64, error)
	CountMembers(ctx context.Context, factionID primitive.ObjectID, userType string) (int64, error)

	UpsertLeaderProfile(ctx context.Context, p *LeaderProfile) error
	FindLeaderProfileByUser(ctx context.Context, userID primitive.ObjectID) (*LeaderProfile, error)

	UpsertAttendeeProfile(ctx context.Context, p *AttendeeProfile) error
	UpsertAttendeeProfileByExternalID(ctx context.Context, p *AttendeeProfile) error
	FindAttendeeProfileByUser(ctx context.Context, userID primitive.ObjectID) (*AttendeeProfile, error)
}

type FactionRepositoryImpl struct {
	Factions         *mongo.Collection
	LeaderProfiles   *mongo.Collection
	AttendeeProfiles *mongo.Collection
}

func NewFactionRepository(mongodb *database.MongodbDB) FactionRepository {
	return &FactionRepositoryImpl{
		Factions:         mongodb.DB.Collection("factions"),
		LeaderProfiles:   mongodb.DB.Collection("leader_profiles"),
		AttendeeProfiles: mongodb.DB.Collection("attendee_profiles"),
	}
}

func (r *FactionRepositoryImpl) Upsert(ctx context.Context, f *Faction) error {
	f.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.Factions, bson.M{"name": f.Name}, f)
}

func (r *FactionRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Faction, error) {
	var f Faction
	if err := r.Factions.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FactionRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*Faction, error) {
	var f Faction
	if err := r.Factions.FindOne(ctx, bson.M{"slug": slug}).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FactionRepositoryImpl) CountChildren(ctx context.Context, factionID primitive.ObjectID) (int64, error) {
	return r.Factions.CountDocuments(ctx, bson.M{"parent_id": factionID})
}

func (r *FactionRepositoryImpl) CountMembers(ctx context.Context, factionID primitive.ObjectID, userType string) (int64, error) {
	switch userType {
	case "leader":
		return r.LeaderProfiles.CountDocuments(ctx, bson.M{"faction_id": factionID})
	default:
		return r.AttendeeProfiles.CountDocuments(ctx, bson.M{"faction_id": factionID})
	}
}

func (r *FactionRepositoryImpl) UpsertLeaderProfile(ctx context.Context, p *LeaderProfile) error {
	p.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.LeaderProfiles, bson.M{"user_id": p.UserID}, p)
}

func (r *FactionRepositoryImpl) FindLeaderProfileByUser(ctx context.Context, userID primitive.ObjectID) (*LeaderProfile, error) {
	var p LeaderProfile
	if err := r.LeaderProfiles.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *FactionRepositoryImpl) UpsertAttendeeProfile(ctx context.Context, p *AttendeeProfile) error {
	p.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.AttendeeProfiles, bson.M{"user_id": p.UserID}, p)
}

// UpsertAttendeeProfileByExternalID keys on the legacy registration id so the
// roster sync can re-run without duplicating rows.
func (r *FactionRepositoryImpl) UpsertAttendeeProfileByExternalID(ctx context.Context, p *AttendeeProfile) error {
	p.UpdatedAt = time.Now()
	return database.Upsert(ctx, r.AttendeeProfiles, bson.M{"external_id": p.ExternalID}, p)
}

func (r *FactionRepositoryImpl) FindAttendeeProfileByUser(ctx context.Context, userID primitive.ObjectID) (*AttendeeProfile, error) {
	var p AttendeeProfile
	if err := r.AttendeeProfiles.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
