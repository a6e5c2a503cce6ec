package pagecontext

import (
	"context"
	"errors"
	"testing"

	common_models "go-campfire/internal/common/models"
	"go-campfire/internal/features/enrollment"
	"go-campfire/internal/features/menu"
	"go-campfire/internal/features/organization"
	"go-campfire/internal/features/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubUserService struct {
	profile *user.Profile
}

func (s *stubUserService) GetUser(ctx context.Context, idHex string) (*user.User, error) {
	return nil, errors.New("not used")
}

func (s *stubUserService) GetProfile(ctx context.Context, u *user.User) (*user.Profile, error) {
	return s.profile, nil
}

func (s *stubUserService) GetProfileOrPlaceholder(ctx context.Context, u *user.User) (*user.Profile, error) {
	if s.profile != nil {
		return s.profile, nil
	}
	placeholder := &user.Profile{Slug: "", Organization: &organization.Organization{Name: "First Org"}}
	if u != nil {
		placeholder.UserID = u.ID
	}
	return placeholder, nil
}

func (s *stubUserService) InfoRow(ctx context.Context, u *user.User) ([]common_models.InfoRowItem, error) {
	return []common_models.InfoRowItem{}, nil
}

type stubNavService struct {
	favorites []string
}

func (s *stubNavService) FavoriteKeys(ctx context.Context, userID string) ([]string, error) {
	return s.favorites, nil
}
func (s *stubNavService) Toggle(ctx context.Context, userID, key string) (bool, error) {
	return false, nil
}
func (s *stubNavService) Add(ctx context.Context, userID, key string) error    { return nil }
func (s *stubNavService) Remove(ctx context.Context, userID, key string) error { return nil }

// stubEnrollmentRepo panics on anything the page context does not touch.
type stubEnrollmentRepo struct {
	enrollment.EnrollmentRepository
	activeByUser *enrollment.ActiveEnrollment
}

func (s *stubEnrollmentRepo) FindActiveEnrollmentByUser(ctx context.Context, userID primitive.ObjectID) (*enrollment.ActiveEnrollment, error) {
	if s.activeByUser == nil {
		return nil, errors.New("not found")
	}
	return s.activeByUser, nil
}

func (s *stubEnrollmentRepo) FindActiveEnrollment(ctx context.Context, id primitive.ObjectID) (*enrollment.ActiveEnrollment, error) {
	return nil, errors.New("not found")
}

func (s *stubEnrollmentRepo) ListFactionEnrollments(ctx context.Context, factionID primitive.ObjectID) ([]enrollment.FactionEnrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentRepo) ListFacilityEnrollmentsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]enrollment.FacilityEnrollment, error) {
	return nil, nil
}

func newTestService(users *stubUserService, repo *stubEnrollmentRepo) PageContextService {
	logger := zap.NewNop()
	return NewPageContextService(
		users,
		menu.NewMenuService(logger),
		&stubNavService{},
		repo,
		logger,
	)
}

func TestBuildPlaceholderProfileForProfilelessUser(t *testing.T) {
	u := &user.User{ID: primitive.NewObjectID(), UserType: common_models.UserTypeAttendee}
	svc := newTestService(&stubUserService{}, &stubEnrollmentRepo{})

	pc := svc.Build(context.Background(), u, "/", "")

	require.NotNil(t, pc.UserProfile)
	assert.Equal(t, "", pc.UserProfile.Slug)
	require.NotNil(t, pc.UserProfile.Organization)
	assert.Equal(t, "First Org", pc.UserProfile.Organization.Name)
}

func TestBuildActiveEnrollmentPlaceholder(t *testing.T) {
	u := &user.User{ID: primitive.NewObjectID(), UserType: common_models.UserTypeAttendee}
	svc := newTestService(&stubUserService{}, &stubEnrollmentRepo{})

	pc := svc.Build(context.Background(), u, "/", "")

	require.NotNil(t, pc.ActiveEnrollment, "missing row yields a placeholder, not an error")
	assert.Equal(t, u.ID, pc.ActiveEnrollment.UserID)
	assert.True(t, pc.ActiveEnrollment.ID.IsZero())
}

func TestBuildSuperuserGetsNoActiveEnrollment(t *testing.T) {
	u := &user.User{ID: primitive.NewObjectID(), UserType: common_models.UserTypeAdmin, IsSuperuser: true}
	existing := &enrollment.ActiveEnrollment{ID: primitive.NewObjectID(), UserID: u.ID}
	svc := newTestService(&stubUserService{}, &stubEnrollmentRepo{activeByUser: existing})

	pc := svc.Build(context.Background(), u, "/", "")
	assert.Nil(t, pc.ActiveEnrollment)
}

func TestBuildIncludesPaletteAndMenus(t *testing.T) {
	u := &user.User{ID: primitive.NewObjectID(), UserType: common_models.UserTypeAttendee}
	svc := newTestService(&stubUserService{}, &stubEnrollmentRepo{})

	pc := svc.Build(context.Background(), u, "/dashboard", "")

	assert.Equal(t, "#ea6900", pc.ColorScheme.Primary)
	assert.Equal(t, "#00100c", pc.ColorScheme.Text)
	assert.NotEmpty(t, pc.MenuItems)
	assert.Equal(t, string(common_models.UserTypeAttendee), pc.UserType)
	assert.NotEmpty(t, pc.Breadcrumbs)
}
