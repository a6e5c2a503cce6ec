package sync

import (
	"context"
	"errors"
	"testing"

	"go-campfire/internal/cache"
	common_models "go-campfire/internal/common/models"
	"go-campfire/internal/features/faction"
	"go-campfire/internal/features/user"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type memorySource struct {
	campers []LegacyCamper
	err     error
}

func (s *memorySource) FetchCampers(ctx context.Context) ([]LegacyCamper, error) {
	return s.campers, s.err
}

type memoryUserRepo struct {
	byUsername map[string]*user.User
}

func (r *memoryUserRepo) Upsert(ctx context.Context, u *user.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.byUsername[u.Username] = u
	return nil
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *memoryUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

type memoryFactionRepo struct {
	faction.FactionRepository
	factions     map[string]*faction.Faction
	byExternalID map[string]*faction.AttendeeProfile
}

func (r *memoryFactionRepo) FindBySlug(ctx context.Context, slug string) (*faction.Faction, error) {
	if f, ok := r.factions[slug]; ok {
		return f, nil
	}
	return nil, errors.New("not found")
}

func (r *memoryFactionRepo) UpsertAttendeeProfileByExternalID(ctx context.Context, p *faction.AttendeeProfile) error {
	r.byExternalID[p.ExternalID] = p
	return nil
}

type memoryLogRepo struct {
	logs []*SyncLog
}

func (r *memoryLogRepo) Create(ctx context.Context, log *SyncLog) error {
	log.ID = primitive.NewObjectID()
	r.logs = append(r.logs, log)
	return nil
}

func (r *memoryLogRepo) Update(ctx context.Context, log *SyncLog) error { return nil }

func (r *memoryLogRepo) List(ctx context.Context, limit int64) ([]SyncLog, error) {
	out := make([]SyncLog, 0, len(r.logs))
	for _, l := range r.logs {
		out = append(out, *l)
	}
	return out, nil
}

func newSyncFixture(source RosterSource) (SyncService, *memoryUserRepo, *memoryFactionRepo, *memoryLogRepo) {
	users := &memoryUserRepo{byUsername: map[string]*user.User{}}
	factions := &memoryFactionRepo{
		factions:     map[string]*faction.Faction{},
		byExternalID: map[string]*faction.AttendeeProfile{},
	}
	logs := &memoryLogRepo{}
	c := cache.NewWithClient(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), zap.NewNop())
	return NewSyncService(source, users, factions, logs, c, zap.NewNop()), users, factions, logs
}

func TestRunRosterSyncUpsertsUsersAndProfiles(t *testing.T) {
	eagles := &faction.Faction{ID: primitive.NewObjectID(), Slug: "eagles", OrganizationID: primitive.NewObjectID()}
	source := &memorySource{campers: []LegacyCamper{
		{ExternalID: "ext-1", FirstName: "Sam", LastName: "Pine", Email: "sam@example.org", FactionName: "Eagles"},
		{ExternalID: "ext-2", FirstName: "Lee", LastName: "Oak", Email: "lee@example.org"},
	}}
	svc, users, factions, logs := newSyncFixture(source)
	factions.factions["eagles"] = eagles

	processed, err := svc.RunRosterSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	sam, ok := users.byUsername["sam@example.org"]
	require.True(t, ok)
	assert.Equal(t, common_models.UserTypeAttendee, sam.UserType)

	profile := factions.byExternalID["ext-1"]
	require.NotNil(t, profile)
	assert.Equal(t, sam.ID, profile.UserID)
	require.NotNil(t, profile.FactionID)
	assert.Equal(t, eagles.ID, *profile.FactionID)

	// Unknown faction leaves the profile unassigned rather than failing.
	unassigned := factions.byExternalID["ext-2"]
	require.NotNil(t, unassigned)
	assert.Nil(t, unassigned.FactionID)

	require.Len(t, logs.logs, 1)
	assert.Equal(t, "success", logs.logs[0].Status)
	assert.Equal(t, 2, logs.logs[0].ProcessedCount)
}

func TestRunRosterSyncRecordsFetchFailure(t *testing.T) {
	svc, _, _, logs := newSyncFixture(&memorySource{err: errors.New("connection refused")})

	_, err := svc.RunRosterSync(context.Background())
	require.Error(t, err)
	require.Len(t, logs.logs, 1)
	assert.Equal(t, "failed", logs.logs[0].Status)
	assert.Contains(t, logs.logs[0].Error, "connection refused")
}

func TestRunRosterSyncReusesExistingUser(t *testing.T) {
	source := &memorySource{campers: []LegacyCamper{
		{ExternalID: "ext-1", FirstName: "Sam", LastName: "Pine", Email: "sam@example.org"},
	}}
	svc, users, _, _ := newSyncFixture(source)
	existing := &user.User{ID: primitive.NewObjectID(), Username: "sam@example.org", UserType: common_models.UserTypeAttendee}
	users.byUsername["sam@example.org"] = existing

	_, err := svc.RunRosterSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, existing.ID, users.byUsername["sam@example.org"].ID, "existing id is kept")
}

func TestCamperSlug(t *testing.T) {
	slug := CamperSlug(LegacyCamper{FirstName: "Sam", LastName: "Pine", ExternalID: "EXT 9"})
	assert.Equal(t, "sam-pine-ext-9", slug)
}
