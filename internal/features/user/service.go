package user

import (
	"context"

	"go-campfire/internal/cache"
	common_models "go-campfire/internal/common/models"
	"go-campfire/internal/features/enrollment"
	"go-campfire/internal/features/facility"
	"go-campfire/internal/features/faction"
	"go-campfire/internal/features/organization"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Profile is the role-specific profile view the rest of the core reads
// attributes off: slug plus whichever scope entities the role carries.
// A placeholder profile has an empty slug and the first organization, so
// consumers can dereference .Organization without nil checks.
type Profile struct {
	UserID       primitive.ObjectID         `json:"user_id"`
	Slug         string                     `json:"slug"`
	Organization *organization.Organization `json:"organization,omitempty"`
	Faction      *faction.Faction           `json:"faction,omitempty"`
	Facility     *facility.Facility         `json:"facility,omitempty"`

	AttendeeProfileID *primitive.ObjectID `json:"-"`
	LeaderProfileID   *primitive.ObjectID `json:"-"`
	FacultyProfileID  *primitive.ObjectID `json:"-"`
}

type UserService interface {
	GetUser(ctx context.Context, idHex string) (*User, error)
	// GetProfile resolves the role-specific profile, or nil when the user
	// has no profile row. Broken attribute chains degrade to nil fields.
	GetProfile(ctx context.Context, u *User) (*Profile, error)
	// GetProfileOrPlaceholder never returns nil for an authenticated user.
	GetProfileOrPlaceholder(ctx context.Context, u *User) (*Profile, error)
	// InfoRow returns the cached per-user metric tuples for the info row.
	InfoRow(ctx context.Context, u *User) ([]common_models.InfoRowItem, error)
}

type UserServiceImpl struct {
	UserRepo       UserRepository
	FactionRepo    faction.FactionRepository
	FacilityRepo   facility.FacilityRepository
	OrgRepo        organization.OrganizationRepository
	EnrollmentRepo enrollment.EnrollmentRepository
	Cache          *cache.Cache
	Logger         *zap.Logger
}

func NewUserService(
	userRepo UserRepository,
	factionRepo faction.FactionRepository,
	facilityRepo facility.FacilityRepository,
	orgRepo organization.OrganizationRepository,
	enrollmentRepo enrollment.EnrollmentRepository,
	c *cache.Cache,
	logger *zap.Logger,
) UserService {
	return &UserServiceImpl{
		UserRepo:       userRepo,
		FactionRepo:    factionRepo,
		FacilityRepo:   facilityRepo,
		OrgRepo:        orgRepo,
		EnrollmentRepo: enrollmentRepo,
		Cache:          c,
		Logger:         logger,
	}
}

func (s *UserServiceImpl) GetUser(ctx context.Context, idHex string) (*User, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, err
	}
	return s.UserRepo.FindByID(ctx, id)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, u *User) (*Profile, error) {
	if u == nil {
		return nil, nil
	}

	switch u.UserType {
	case common_models.UserTypeAttendee:
		p, err := s.FactionRepo.FindAttendeeProfileByUser(ctx, u.ID)
		if err != nil {
			return nil, nil
		}
		profile := &Profile{UserID: u.ID, Slug: p.Slug, AttendeeProfileID: &p.ID}
		if p.FactionID != nil {
			profile.Faction, _ = s.FactionRepo.FindByID(ctx, *p.FactionID)
		}
		profile.Organization, _ = s.OrgRepo.FindByID(ctx, p.OrganizationID)
		return profile, nil

	case common_models.UserTypeLeader:
		p, err := s.FactionRepo.FindLeaderProfileByUser(ctx, u.ID)
		if err != nil {
			return nil, nil
		}
		profile := &Profile{UserID: u.ID, Slug: p.Slug, LeaderProfileID: &p.ID}
		if p.FactionID != nil {
			profile.Faction, _ = s.FactionRepo.FindByID(ctx, *p.FactionID)
		}
		profile.Organization, _ = s.OrgRepo.FindByID(ctx, p.OrganizationID)
		return profile, nil

	case common_models.UserTypeFaculty, common_models.UserTypeOrganizationFaculty, common_models.UserTypeFacilityFaculty:
		p, err := s.FacilityRepo.FindFacultyProfileByUser(ctx, u.ID)
		if err != nil {
			return nil, nil
		}
		profile := &Profile{UserID: u.ID, Slug: p.Slug, FacultyProfileID: &p.ID}
		profile.Facility, _ = s.FacilityRepo.FindByID(ctx, p.FacilityID)
		profile.Organization, _ = s.OrgRepo.FindByID(ctx, p.OrganizationID)
		return profile, nil
	}

	return nil, nil
}

func (s *UserServiceImpl) GetProfileOrPlaceholder(ctx context.Context, u *User) (*Profile, error) {
	profile, err := s.GetProfile(ctx, u)
	if err == nil && profile != nil {
		return profile, nil
	}

	placeholder := &Profile{Slug: ""}
	if u != nil {
		placeholder.UserID = u.ID
	}
	if org, err := s.OrgRepo.FindFirst(ctx); err == nil {
		placeholder.Organization = org
	}
	return placeholder, nil
}

func (s *UserServiceImpl) InfoRow(ctx context.Context, u *User) ([]common_models.InfoRowItem, error) {
	if u == nil {
		return nil, nil
	}

	key := cache.Key("info_row_data", u.ID.Hex())
	var items []common_models.InfoRowItem
	err := s.Cache.Remember(ctx, key, cache.DefaultTTL, &items, func() (interface{}, error) {
		return s.buildInfoRow(ctx, u)
	})
	if err != nil {
		s.Logger.Warn("info row build failed", zap.String("actor_id", u.ID.Hex()), zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *UserServiceImpl) buildInfoRow(ctx context.Context, u *User) ([]common_models.InfoRowItem, error) {
	profile, err := s.GetProfile(ctx, u)
	if err != nil || profile == nil {
		return []common_models.InfoRowItem{}, nil
	}

	var enrollments int64
	class := "count"
	switch {
	case profile.AttendeeProfileID != nil:
		enrollments, _ = s.EnrollmentRepo.CountAttendeeEnrollments(ctx, *profile.AttendeeProfileID)
	case profile.LeaderProfileID != nil:
		enrollments, _ = s.EnrollmentRepo.CountLeaderEnrollments(ctx, *profile.LeaderProfileID)
	case profile.FacultyProfileID != nil:
		enrollments, _ = s.EnrollmentRepo.CountFacultyEnrollments(ctx, *profile.FacultyProfileID)
		class = "count first"
	default:
		return []common_models.InfoRowItem{}, nil
	}

	// Messages and todos are not modeled yet; render zero counts so the row
	// keeps its shape.
	return []common_models.InfoRowItem{
		{Label: "Enrollments", URL: "#", Count: enrollments, Class: class, Style: class},
		{Label: "Messages", URL: "#", Count: 0, Class: "count", Style: "count"},
		{Label: "ToDo", URL: "#", Count: 0, Class: "count", Style: "count"},
	}, nil
}
