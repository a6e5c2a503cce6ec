package pagecontext

import (
	"context"

	common_models "go-campfire/internal/common/models"
	"go-campfire/internal/features/enrollment"
	"go-campfire/internal/features/menu"
	"go-campfire/internal/features/navigation"
	"go-campfire/internal/features/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// colorScheme is the fixed site palette.
var colorScheme = common_models.ColorScheme{
	Text:               "#00100c",
	BgLt:               "#fff8db",
	BgDk:               "#612809",
	SecondaryHighlight: "#556643",
	CallToAction:       "#cc2500",
	Primary:            "#ea6900",
}

// MyEnrollments is the per-user enrollment summary for the page shell.
type MyEnrollments struct {
	FacilityEnrollments []enrollment.FacilityEnrollment `json:"facility_enrollments"`
	FactionEnrollments  []enrollment.FactionEnrollment  `json:"faction_enrollments"`
	CanEnrollSelf       bool                            `json:"can_enroll_self"`
	CanEnrollFaction    bool                            `json:"can_enroll_faction"`
}

// PageContext carries everything the page shell needs for one request.
type PageContext struct {
	MenuItems            []menu.ResolvedEntry          `json:"menu_items"`
	QuickMenuItems       []menu.ResolvedEntry          `json:"quick_menu_items"`
	FavoriteMenuKeys     []string                      `json:"favorite_menu_keys"`
	ToggleNavFavoriteURL string                        `json:"toggle_nav_favorite_url"`
	TopLinks             []menu.TopLink                `json:"toplinks"`
	UserType             string                        `json:"user_type"`
	UserProfile          *user.Profile                 `json:"user_profile"`
	ActiveEnrollment     *enrollment.ActiveEnrollment  `json:"active_enrollment,omitempty"`
	ColorScheme          common_models.ColorScheme     `json:"color_scheme"`
	InfoRowData          []common_models.InfoRowItem   `json:"info_row_data"`
	MyEnrollments        *MyEnrollments                `json:"my_enrollments,omitempty"`
	Breadcrumbs          []common_models.Breadcrumb    `json:"breadcrumbs"`
}

type PageContextService interface {
	// Build assembles the full page context. Every sub-section degrades to
	// an empty value on failure; Build itself never errors for an
	// authenticated user.
	Build(ctx context.Context, u *user.User, path string, activeEnrollmentID string) *PageContext
}

type PageContextServiceImpl struct {
	UserService       user.UserService
	MenuService       menu.MenuService
	NavigationService navigation.NavigationService
	EnrollmentRepo    enrollment.EnrollmentRepository
	Logger            *zap.Logger
}

func NewPageContextService(
	userService user.UserService,
	menuService menu.MenuService,
	navigationService navigation.NavigationService,
	enrollmentRepo enrollment.EnrollmentRepository,
	logger *zap.Logger,
) PageContextService {
	return &PageContextServiceImpl{
		UserService:       userService,
		MenuService:       menuService,
		NavigationService: navigationService,
		EnrollmentRepo:    enrollmentRepo,
		Logger:            logger,
	}
}

func (s *PageContextServiceImpl) Build(ctx context.Context, u *user.User, path string, activeEnrollmentID string) *PageContext {
	pc := &PageContext{
		ColorScheme:          colorScheme,
		TopLinks:             s.MenuService.TopLinks(),
		ToggleNavFavoriteURL: "/api/navigation/favorites/:key/toggle",
		UserType:             "other",
		FavoriteMenuKeys:     []string{},
		InfoRowData:          []common_models.InfoRowItem{},
	}

	profile, _ := s.UserService.GetProfileOrPlaceholder(ctx, u)
	pc.UserProfile = profile

	labels := map[string]string{}
	if profile != nil && profile.Organization != nil {
		labels = profile.Organization.Labels
	}
	pc.Breadcrumbs = BuildBreadcrumbs(path, labels)

	if u == nil {
		m := s.MenuService.BuildMenuForUser(ctx, nil, profile, nil)
		pc.MenuItems = m.Primary
		pc.QuickMenuItems = m.Quick
		return pc
	}

	pc.UserType = string(u.UserType)

	favorites, err := s.NavigationService.FavoriteKeys(ctx, u.ID.Hex())
	if err != nil {
		s.Logger.Warn("favorites lookup failed", zap.String("action", "page_context"), zap.Error(err))
		favorites = nil
	}
	pc.FavoriteMenuKeys = favorites

	m := s.MenuService.BuildMenuForUser(ctx, u, profile, favorites)
	pc.MenuItems = m.Primary
	pc.QuickMenuItems = m.Quick

	pc.ActiveEnrollment = s.resolveActiveEnrollment(ctx, u, activeEnrollmentID)

	if items, err := s.UserService.InfoRow(ctx, u); err == nil {
		pc.InfoRowData = items
	}

	pc.MyEnrollments = s.buildMyEnrollments(ctx, u, profile)
	return pc
}

// resolveActiveEnrollment prefers the explicitly selected enrollment, then
// the user's stored one, then a placeholder bound to the user id. Superusers
// get none.
func (s *PageContextServiceImpl) resolveActiveEnrollment(ctx context.Context, u *user.User, activeEnrollmentID string) *enrollment.ActiveEnrollment {
	if u.IsSuperuser {
		return nil
	}

	if activeEnrollmentID != "" {
		if id, err := primitive.ObjectIDFromHex(activeEnrollmentID); err == nil {
			if ae, err := s.EnrollmentRepo.FindActiveEnrollment(ctx, id); err == nil {
				return ae
			}
		}
	}

	if ae, err := s.EnrollmentRepo.FindActiveEnrollmentByUser(ctx, u.ID); err == nil {
		return ae
	}
	return &enrollment.ActiveEnrollment{UserID: u.ID}
}

// buildMyEnrollments mirrors what attendees and admin leaders can see and do
// on enrollment pages. Other roles get nothing.
func (s *PageContextServiceImpl) buildMyEnrollments(ctx context.Context, u *user.User, profile *user.Profile) *MyEnrollments {
	isAttendee := u.UserType == common_models.UserTypeAttendee
	isLeaderAdmin := user.IsLeaderAdmin(u)
	if !isAttendee && !isLeaderAdmin {
		return nil
	}

	my := &MyEnrollments{
		FacilityEnrollments: []enrollment.FacilityEnrollment{},
		FactionEnrollments:  []enrollment.FactionEnrollment{},
	}
	if profile == nil || profile.Slug == "" {
		return my
	}

	my.CanEnrollSelf = true
	my.CanEnrollFaction = isLeaderAdmin && profile.Faction != nil
	if profile.Faction == nil {
		return my
	}

	factionEnrollments, err := s.EnrollmentRepo.ListFactionEnrollments(ctx, profile.Faction.ID)
	if err != nil {
		s.Logger.Warn("faction enrollments lookup failed", zap.String("action", "page_context"), zap.Error(err))
		return my
	}
	my.FactionEnrollments = factionEnrollments

	facilityIDs := make([]primitive.ObjectID, 0, len(factionEnrollments))
	seen := map[primitive.ObjectID]bool{}
	for _, fe := range factionEnrollments {
		if !seen[fe.FacilityEnrollmentID] {
			seen[fe.FacilityEnrollmentID] = true
			facilityIDs = append(facilityIDs, fe.FacilityEnrollmentID)
		}
	}
	if facilityEnrollments, err := s.EnrollmentRepo.ListFacilityEnrollmentsByIDs(ctx, facilityIDs); err == nil && facilityEnrollments != nil {
		my.FacilityEnrollments = facilityEnrollments
	}
	return my
}
