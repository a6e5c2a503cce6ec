package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go-campfire/internal/features/enrollment"
	"go-campfire/internal/features/facility"
	"go-campfire/internal/features/faction"
	"go-campfire/internal/features/menu"
	"go-campfire/internal/features/user"

	"go.uber.org/zap"
)

var ErrUnknownPortal = errors.New("unknown portal")

type DashboardService interface {
	// BuildDashboard assembles the portal's widgets for one user: build,
	// drop failures, priority sort, then apply the saved layout. A widget
	// builder that errors is skipped, never fatal.
	BuildDashboard(ctx context.Context, u *user.User, profile *user.Profile, portalKey string) (Portal, []map[string]interface{}, error)
	GetLayout(ctx context.Context, u *user.User, portalKey string) (*DashboardLayout, error)
	SaveLayout(ctx context.Context, u *user.User, portalKey string, layoutKeys, hidden []string) (*DashboardLayout, error)
}

type widgetBuilder func(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error)

type DashboardServiceImpl struct {
	Repo           DashboardRepository
	EnrollmentRepo enrollment.EnrollmentRepository
	FactionRepo    faction.FactionRepository
	FacilityRepo   facility.FacilityRepository
	Logger         *zap.Logger

	builders map[string]widgetBuilder
}

func NewDashboardService(
	repo DashboardRepository,
	enrollmentRepo enrollment.EnrollmentRepository,
	factionRepo faction.FactionRepository,
	facilityRepo facility.FacilityRepository,
	logger *zap.Logger,
) DashboardService {
	s := &DashboardServiceImpl{
		Repo:           repo,
		EnrollmentRepo: enrollmentRepo,
		FactionRepo:    factionRepo,
		FacilityRepo:   facilityRepo,
		Logger:         logger,
	}
	s.builders = map[string]widgetBuilder{
		"announcement":     s.buildAnnouncement,
		"my_schedule":      s.buildMySchedule,
		"my_metrics":       s.buildMyMetrics,
		"quick_actions":    s.buildQuickActions,
		"resources":        s.buildResources,
		"faction_metrics":  s.buildFactionMetrics,
		"faction_roster":   s.buildFactionRoster,
		"facility_metrics": s.buildFacilityMetrics,
		"class_list":       s.buildClassList,
		"site_metrics":     s.buildSiteMetrics,
	}
	return s
}

func (s *DashboardServiceImpl) BuildDashboard(ctx context.Context, u *user.User, profile *user.Profile, portalKey string) (Portal, []map[string]interface{}, error) {
	if portalKey == "" {
		portalKey = DefaultPortalKey(u)
	}
	portal, ok := PortalFor(u, portalKey)
	if !ok {
		return Portal{}, nil, ErrUnknownPortal
	}

	widgets := make([]*Widget, 0, len(portal.Widgets))
	for _, name := range portal.Widgets {
		builder, ok := s.builders[name]
		if !ok {
			s.Logger.Warn("unknown widget builder",
				zap.String("action", "dashboard_build"),
				zap.String("portal", portal.Key),
				zap.String("widget", name),
			)
			continue
		}
		w, err := builder(ctx, u, profile)
		if err != nil || w == nil {
			if err != nil {
				s.Logger.Warn("widget build failed",
					zap.String("action", "dashboard_build"),
					zap.String("portal", portal.Key),
					zap.String("widget", name),
					zap.Error(err),
				)
			}
			continue
		}
		widgets = append(widgets, w)
	}

	sort.SliceStable(widgets, func(i, j int) bool {
		return widgets[i].Priority < widgets[j].Priority
	})

	layout, err := s.GetLayout(ctx, u, portal.Key)
	if err != nil {
		s.Logger.Warn("layout lookup failed", zap.String("action", "dashboard_build"), zap.Error(err))
	}
	widgets = applyLayout(widgets, layout)

	dicts := make([]map[string]interface{}, 0, len(widgets))
	for _, w := range widgets {
		dicts = append(dicts, w.AsDict())
	}
	return portal, dicts, nil
}

// applyLayout drops hidden widgets, then reorders so keys listed in the
// layout come first in layout order. Unlisted widgets keep their priority
// order and follow the listed ones.
func applyLayout(widgets []*Widget, layout *DashboardLayout) []*Widget {
	if layout == nil {
		return widgets
	}

	hidden := map[string]bool{}
	for _, key := range layout.HiddenWidgets {
		hidden[key] = true
	}

	visible := make([]*Widget, 0, len(widgets))
	for _, w := range widgets {
		if !hidden[w.Key] {
			visible = append(visible, w)
		}
	}

	position := map[string]int{}
	for i, key := range layout.Layout {
		if _, seen := position[key]; !seen {
			position[key] = i
		}
	}

	listed := make([]*Widget, 0, len(visible))
	unlisted := make([]*Widget, 0, len(visible))
	for _, w := range visible {
		if _, ok := position[w.Key]; ok {
			listed = append(listed, w)
		} else {
			unlisted = append(unlisted, w)
		}
	}
	sort.SliceStable(listed, func(i, j int) bool {
		return position[listed[i].Key] < position[listed[j].Key]
	})
	return append(listed, unlisted...)
}

func (s *DashboardServiceImpl) GetLayout(ctx context.Context, u *user.User, portalKey string) (*DashboardLayout, error) {
	if u == nil {
		return nil, nil
	}
	return s.Repo.FindLayout(ctx, u.ID, portalKey)
}

func (s *DashboardServiceImpl) SaveLayout(ctx context.Context, u *user.User, portalKey string, layoutKeys, hidden []string) (*DashboardLayout, error) {
	if u == nil {
		return nil, errors.New("no user")
	}
	if _, ok := Portals[portalKey]; !ok {
		return nil, ErrUnknownPortal
	}

	layout, err := s.Repo.FindLayout(ctx, u.ID, portalKey)
	if err != nil {
		return nil, err
	}
	if layout == nil {
		layout = &DashboardLayout{UserID: u.ID, PortalKey: portalKey}
	}
	if layoutKeys != nil {
		layout.Layout = layoutKeys
	}
	if hidden != nil {
		layout.HiddenWidgets = hidden
	}
	if err := s.Repo.SaveLayout(ctx, layout); err != nil {
		return nil, err
	}
	return layout, nil
}

func (s *DashboardServiceImpl) buildAnnouncement(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error) {
	name := "camper"
	if u != nil && u.FirstName != "" {
		name = u.FirstName
	}
	return NewAnnouncementWidget("Welcome", fmt.Sprintf("Welcome back, %s. The fire is lit.", name)), nil
}

func (s *DashboardServiceImpl) buildMySchedule(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error) {
	if profile == nil || profile.Slug == "" {
		return nil, nil
	}
	items := []ListItem{}
	url := menu.Reverse("attendees:enrollments:index", map[string]string{"slug": profile.Slug})
	items = append(items, ListItem{Label: "My full schedule", URL: url})
	return NewListWidget("My Schedule", items), nil
}

func (s *DashboardServiceImpl) buildMyMetrics(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error) {
	if profile == nil || profile.AttendeeProfileID == nil {
		return nil, nil
	}
	count, err := s.EnrollmentRepo.CountAttendeeEnrollments(ctx, *profile.AttendeeProfileID)
	if err != nil {
		return nil, err
	}
	return NewMetricsWidget("My Camp", []Metric{
		{Label: "Enrollments", Value: count},
	}), nil
}

func (s *DashboardServiceImpl) buildQuickActions(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error) {
	actions := []Action{
		{Label: "Dashboard", URL: menu.Reverse("dashboard", nil), Icon: "fas fa-fire"},
		{Label: "Resources", URL: menu.Reverse("resources", nil), Icon: "fas fa-book"},
	}
	if profile != nil && profile.Faction != nil {
		actions = append(actions, Action{
			Label: "Manage Enrollments",
			URL:   menu.Reverse("factions:enrollments:index", map[string]string{"slug": profile.Faction.Slug}),
			Icon:  "fas fa-calendar-alt",
		})
	}
	w := NewActionsWidget("Quick Actions", actions)
	w.Priority = 5
	return w, nil
}

func (s *DashboardServiceImpl) buildResources(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error) {
	return NewResourceListWidget("Resources", []ListItem{
		{Label: "Camp Handbook", URL: "/resources", Meta: "pdf"},
		{Label: "Packing List", URL: "/resources", Meta: "pdf"},
	}), nil
}

func (s *DashboardServiceImpl) buildFactionMetrics(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error) {
	if profile == nil || profile.Faction == nil {
		return nil, nil
	}
	members, err := s.FactionRepo.CountMembers(ctx, profile.Faction.ID, "ATTENDEE")
	if err != nil {
		return nil, err
	}
	enrollments, err := s.EnrollmentRepo.CountFactionEnrollments(ctx, profile.Faction.ID)
	if err != nil {
		return nil, err
	}
	return NewMetricsWidget(profile.Faction.Name, []Metric{
		{Label: "Attendees", Value: members},
		{Label: "Enrollments", Value: enrollments},
	}), nil
}

func (s *DashboardServiceImpl) buildFactionRoster(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error) {
	if profile == nil || profile.Faction == nil {
		return nil, nil
	}
	enrollments, err := s.EnrollmentRepo.ListFactionEnrollments(ctx, profile.Faction.ID)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(enrollments))
	for _, e := range enrollments {
		week := "unscheduled"
		if e.WeekID != nil {
			week = "scheduled"
		}
		quarters := "unassigned"
		if e.QuartersID != nil {
			quarters = "assigned"
		}
		rows = append(rows, []string{e.Name, week, quarters})
	}
	w := NewTableWidget("Sessions", []string{"Session", "Week", "Quarters"}, rows)
	w.Width = 12
	return w, nil
}

func (s *DashboardServiceImpl) buildFacilityMetrics(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error) {
	if profile == nil || profile.Facility == nil {
		return nil, nil
	}
	departments, err := s.FacilityRepo.CountDepartments(ctx, profile.Facility.ID)
	if err != nil {
		return nil, err
	}
	faculty, err := s.FacilityRepo.CountFacultyProfiles(ctx, profile.Facility.ID)
	if err != nil {
		return nil, err
	}
	return NewMetricsWidget(profile.Facility.Name, []Metric{
		{Label: "Departments", Value: departments},
		{Label: "Faculty", Value: faculty},
	}), nil
}

func (s *DashboardServiceImpl) buildClassList(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error) {
	if profile == nil || profile.Facility == nil {
		return nil, nil
	}
	classes, err := s.EnrollmentRepo.ListFacilityEnrollments(ctx, profile.Facility.ID)
	if err != nil {
		return nil, err
	}
	items := make([]ListItem, 0, len(classes))
	for _, c := range classes {
		items = append(items, ListItem{Label: c.Name, Meta: c.Start.Format("Jan 2")})
	}
	return NewListWidget("Sessions", items), nil
}

func (s *DashboardServiceImpl) buildSiteMetrics(ctx context.Context, u *user.User, profile *user.Profile) (*Widget, error) {
	w := NewActionsWidget("Site", []Action{
		{Label: "Site Admin", URL: menu.Reverse("admin:index", nil), Icon: "fas fa-shield-alt"},
		{Label: "User Management", URL: menu.Reverse("leaders:index", nil), Icon: "fas fa-users-cog"},
	})
	w.Width = 12
	return w, nil
}
