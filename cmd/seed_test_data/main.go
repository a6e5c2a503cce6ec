// Command seed_test_data loads a deterministic demo dataset. The whole build
// runs inside one transaction: a failure at any step leaves the database
// untouched and exits non-zero.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-campfire/internal/config"
	"go-campfire/internal/database"
	"go-campfire/internal/features/course"
	"go-campfire/internal/features/enrollment"
	"go-campfire/internal/features/facility"
	"go-campfire/internal/features/faction"
	"go-campfire/internal/features/organization"
	"go-campfire/internal/features/user"
	"go-campfire/pkg/utils"

	common_models "go-campfire/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := &database.MongodbDB{Client: client, DB: client.Database(cfg.DBName)}

	builder := &testDataBuilder{
		orgRepo:        organization.NewOrganizationRepository(db),
		facilityRepo:   facility.NewFacilityRepository(db),
		factionRepo:    faction.NewFactionRepository(db),
		courseRepo:     course.NewCourseRepository(db),
		enrollmentRepo: enrollment.NewEnrollmentRepository(db),
		userRepo:       user.NewUserRepository(db),
	}

	session, err := client.StartSession()
	if err != nil {
		log.Fatalf("mongo session: %v", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, builder.build(sc)
	})
	if err != nil {
		log.Fatalf("seed aborted, no data written: %v", err)
	}

	fmt.Println("Seed data ready.")
}

// testDataBuilder wires up all of the related domain objects. Every entity
// keeps a stable natural key so repeated runs converge on the same dataset.
type testDataBuilder struct {
	orgRepo        organization.OrganizationRepository
	facilityRepo   facility.FacilityRepository
	factionRepo    faction.FactionRepository
	courseRepo     course.CourseRepository
	enrollmentRepo enrollment.EnrollmentRepository
	userRepo       user.UserRepository

	cascade      *organization.Organization
	riverBend    *facility.Facility
	summitRidge  *facility.Facility
	departments  map[string]*facility.Department
	quarters     map[string]*facility.Quarters
	factions     map[string]*faction.Faction
	courses      map[string]*course.Course
	summer       *enrollment.OrganizationEnrollment
	sessions     map[string]*enrollment.FacilityEnrollment
	weeks        map[string]*enrollment.Week
	users        map[string]*user.User
	leaderProfs  map[string]*faction.LeaderProfile
	attendProfs  map[string]*faction.AttendeeProfile
	facultyProfs map[string]*facility.FacultyProfile
	factionEnrs  map[string]*enrollment.FactionEnrollment
}

func (b *testDataBuilder) build(ctx context.Context) error {
	b.departments = map[string]*facility.Department{}
	b.quarters = map[string]*facility.Quarters{}
	b.factions = map[string]*faction.Faction{}
	b.courses = map[string]*course.Course{}
	b.sessions = map[string]*enrollment.FacilityEnrollment{}
	b.weeks = map[string]*enrollment.Week{}
	b.users = map[string]*user.User{}
	b.leaderProfs = map[string]*faction.LeaderProfile{}
	b.attendProfs = map[string]*faction.AttendeeProfile{}
	b.facultyProfs = map[string]*facility.FacultyProfile{}
	b.factionEnrs = map[string]*enrollment.FactionEnrollment{}

	steps := []func(context.Context) error{
		b.createOrganizations,
		b.createFacilities,
		b.createFactions,
		b.createCourses,
		b.createEnrollmentWindows,
		b.createFacilityClasses,
		b.createUsersAndProfiles,
		b.createFactionEnrollments,
		b.createPersonEnrollments,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func progress(label string) {
	fmt.Printf("  - %s ensured\n", label)
}

func (b *testDataBuilder) createOrganizations(ctx context.Context) error {
	fmt.Println("Creating organizations")

	national := &organization.Organization{
		Name:         "Campfire National Council",
		Slug:         "campfire-national-council",
		Abbreviation: "CNC",
		Description:  "National umbrella for all councils.",
		MaxDepth:     5,
	}
	if err := b.orgRepo.Upsert(ctx, national); err != nil {
		return err
	}
	progress(national.Name)

	northern := &organization.Organization{
		Name:         "Northern Lights Council",
		Slug:         "northern-lights-council",
		Abbreviation: "NLC",
		Description:  "Regional council serving the northern territories.",
		MaxDepth:     4,
		ParentID:     &national.ID,
	}
	if err := b.orgRepo.Upsert(ctx, northern); err != nil {
		return err
	}
	progress(northern.Name)

	cascade := &organization.Organization{
		Name:         "Cascade District",
		Slug:         "cascade-district",
		Abbreviation: "CD",
		Description:  "District focused on mountain and river programs.",
		MaxDepth:     3,
		ParentID:     &northern.ID,
		Labels: map[string]string{
			"facility_label": "Camp",
			"faction_label":  "Patrol",
		},
	}
	if err := b.orgRepo.Upsert(ctx, cascade); err != nil {
		return err
	}
	progress(cascade.Name)

	b.cascade = cascade
	return nil
}

func (b *testDataBuilder) createFacilities(ctx context.Context) error {
	fmt.Println("Creating facilities, departments, and quarters")

	b.riverBend = &facility.Facility{
		Name:           "River Bend Training Center",
		Slug:           "river-bend-training-center",
		OrganizationID: b.cascade.ID,
	}
	b.summitRidge = &facility.Facility{
		Name:           "Summit Ridge Basecamp",
		Slug:           "summit-ridge-basecamp",
		OrganizationID: b.cascade.ID,
	}
	for _, f := range []*facility.Facility{b.riverBend, b.summitRidge} {
		if err := b.facilityRepo.Upsert(ctx, f); err != nil {
			return err
		}
		progress(f.Name)
	}

	departments := []struct {
		key      string
		name     string
		facility *facility.Facility
	}{
		{"rb_aquatics", "Aquatics", b.riverBend},
		{"rb_skills", "Outdoor Skills", b.riverBend},
		{"summit_lab", "Leadership Lab", b.summitRidge},
	}
	for _, d := range departments {
		dept := &facility.Department{
			Name:       d.name,
			Slug:       utils.Slugify(d.name),
			FacilityID: d.facility.ID,
		}
		if err := b.facilityRepo.UpsertDepartment(ctx, dept); err != nil {
			return err
		}
		b.departments[d.key] = dept
		progress(d.name)
	}

	cabin := &facility.QuartersType{Name: "Cabin"}
	lodge := &facility.QuartersType{Name: "Lodge"}
	for _, qt := range []*facility.QuartersType{cabin, lodge} {
		if err := b.facilityRepo.UpsertQuartersType(ctx, qt); err != nil {
			return err
		}
	}

	quarters := []struct {
		key      string
		name     string
		facility *facility.Facility
		qtype    *facility.QuartersType
		capacity int
	}{
		{"pinecone", "Pinecone Cabin", b.riverBend, cabin, 12},
		{"riverside", "Riverside Cabin", b.riverBend, cabin, 10},
		{"summit_lodge", "Summit Lodge", b.summitRidge, lodge, 24},
	}
	for _, q := range quarters {
		row := &facility.Quarters{
			Name:       q.name,
			FacilityID: q.facility.ID,
			TypeID:     q.qtype.ID,
			Capacity:   q.capacity,
		}
		if err := b.facilityRepo.UpsertQuarters(ctx, row); err != nil {
			return err
		}
		b.quarters[q.key] = row
		progress(q.name)
	}
	return nil
}

func (b *testDataBuilder) createFactions(ctx context.Context) error {
	fmt.Println("Creating factions")

	factions := []struct {
		key    string
		name   string
		parent string
	}{
		{"eagle", "Eagle Patrol", ""},
		{"eagle_foxes", "Eagle Patrol - Foxes", "eagle"},
		{"aurora", "Aurora Crew", ""},
		{"aurora_voyagers", "Aurora Crew - Voyagers", "aurora"},
	}
	for _, def := range factions {
		row := &faction.Faction{
			Name:           def.name,
			Slug:           utils.Slugify(def.name),
			OrganizationID: b.cascade.ID,
		}
		if def.parent != "" {
			row.ParentID = &b.factions[def.parent].ID
		}
		if err := b.factionRepo.Upsert(ctx, row); err != nil {
			return err
		}
		b.factions[def.key] = row
		progress(def.name)
	}
	return nil
}

func (b *testDataBuilder) createCourses(ctx context.Context) error {
	fmt.Println("Creating requirements and courses")

	requirements := map[string]*course.Requirement{
		"medical":    {Name: "General Medical Release"},
		"navigation": {Name: "Compass Fundamentals"},
		"interview":  {Name: "Team Leadership Interview"},
	}
	for _, req := range requirements {
		if err := b.courseRepo.UpsertRequirement(ctx, req); err != nil {
			return err
		}
		progress(req.Name)
	}

	courses := []struct {
		key  string
		name string
		req  string
	}{
		{"wfa", "Wilderness First Aid", "medical"},
		{"nav", "Backcountry Navigation", "navigation"},
		{"leader", "Emerging Leader Workshop", "interview"},
	}
	for _, def := range courses {
		row := &course.Course{
			Name:           def.name,
			Slug:           utils.Slugify(def.name),
			RequirementIDs: []primitive.ObjectID{requirements[def.req].ID},
		}
		if err := b.courseRepo.UpsertCourse(ctx, row); err != nil {
			return err
		}
		b.courses[def.key] = row
		progress(def.name)
	}
	return nil
}

func (b *testDataBuilder) createEnrollmentWindows(ctx context.Context) error {
	fmt.Println("Creating enrollments and schedules")

	b.summer = &enrollment.OrganizationEnrollment{
		Name:           "2025 Summer Adventure",
		OrganizationID: b.cascade.ID,
		Start:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	}
	if err := b.enrollmentRepo.UpsertOrganizationEnrollment(ctx, b.summer); err != nil {
		return err
	}
	progress(b.summer.Name)

	for _, def := range []struct {
		key  string
		name string
		c    *course.Course
	}{
		{"wfa", "Wilderness First Aid 2025", b.courses["wfa"]},
		{"nav", "Backcountry Navigation 2025", b.courses["nav"]},
		{"leader", "Emerging Leader Workshop 2025", b.courses["leader"]},
	} {
		oc := &enrollment.OrganizationCourse{
			Name:                     def.name,
			CourseID:                 def.c.ID,
			OrganizationEnrollmentID: b.summer.ID,
		}
		if err := b.enrollmentRepo.UpsertOrganizationCourse(ctx, oc); err != nil {
			return err
		}
		progress(def.name)
	}

	sessions := []struct {
		key      string
		name     string
		facility *facility.Facility
		start    time.Time
		end      time.Time
	}{
		{"river_bend", "River Bend Session 1", b.riverBend,
			time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC)},
		{"summit_ridge", "Summit Ridge Intensive", b.summitRidge,
			time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC), time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, def := range sessions {
		row := &enrollment.FacilityEnrollment{
			Name:                     def.name,
			FacilityID:               def.facility.ID,
			OrganizationEnrollmentID: b.summer.ID,
			Start:                    def.start,
			End:                      def.end,
		}
		if err := b.enrollmentRepo.UpsertFacilityEnrollment(ctx, row); err != nil {
			return err
		}
		b.sessions[def.key] = row
		progress(def.name)
	}

	weeks := []struct {
		key     string
		name    string
		session string
		start   time.Time
	}{
		{"river_w1", "River Bend Week 1", "river_bend", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
		{"river_w2", "River Bend Week 2", "river_bend", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
		{"summit_w1", "Summit Ridge Week 1", "summit_ridge", time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)},
	}
	for _, def := range weeks {
		row := &enrollment.Week{
			Name:                 def.name,
			FacilityEnrollmentID: b.sessions[def.session].ID,
			Start:                def.start,
			End:                  def.start.AddDate(0, 0, 6),
		}
		if err := b.enrollmentRepo.UpsertWeek(ctx, row); err != nil {
			return err
		}
		b.weeks[def.key] = row
		progress(def.name)
	}

	periods := []struct {
		name    string
		session string
		order   int
	}{
		{"RB Morning Block", "river_bend", 1},
		{"RB Afternoon Block", "river_bend", 2},
		{"Summit Morning Block", "summit_ridge", 1},
		{"Summit Afternoon Block", "summit_ridge", 2},
	}
	for _, def := range periods {
		row := &enrollment.Period{
			Name:                 def.name,
			FacilityEnrollmentID: b.sessions[def.session].ID,
			Order:                def.order,
		}
		if err := b.enrollmentRepo.UpsertPeriod(ctx, row); err != nil {
			return err
		}
		progress(def.name)
	}
	return nil
}

func (b *testDataBuilder) createFacilityClasses(ctx context.Context) error {
	classes := []struct {
		name    string
		c       *course.Course
		session string
		dept    string
		max     int
	}{
		{"River Bend Wilderness First Aid", b.courses["wfa"], "river_bend", "rb_aquatics", 24},
		{"River Bend Navigation Lab", b.courses["nav"], "river_bend", "rb_skills", 28},
		{"Summit Ridge Leadership Cohort", b.courses["leader"], "summit_ridge", "summit_lab", 18},
	}
	for _, def := range classes {
		session := b.sessions[def.session]
		row := &course.FacilityClass{
			Name:                 def.name,
			CourseID:             def.c.ID,
			FacilityID:           session.FacilityID,
			DepartmentID:         &b.departments[def.dept].ID,
			FacilityEnrollmentID: session.ID,
			MaxEnrollment:        def.max,
		}
		if err := b.courseRepo.UpsertFacilityClass(ctx, row); err != nil {
			return err
		}
		progress(def.name)
	}
	return nil
}

func (b *testDataBuilder) createUsersAndProfiles(ctx context.Context) error {
	fmt.Println("Creating users and profiles")

	userDefs := []struct {
		key         string
		username    string
		first, last string
		userType    common_models.UserType
		isAdmin     bool
		isSuperuser bool
	}{
		{"admin", "campfire.admin", "Ada", "Admin", common_models.UserTypeAdmin, true, true},
		{"river_faculty", "donna.faculty", "Donna", "Rivera", common_models.UserTypeFaculty, true, false},
		{"summit_faculty", "mason.faculty", "Mason", "Greene", common_models.UserTypeFaculty, false, false},
		{"eagle_leader", "leo.leader", "Leo", "Castor", common_models.UserTypeLeader, true, false},
		{"aurora_leader", "sara.leader", "Sara", "Nguyen", common_models.UserTypeLeader, false, false},
		{"attendee_amy", "amy.attendee", "Amy", "Lopez", common_models.UserTypeAttendee, false, false},
		{"attendee_riley", "riley.attendee", "Riley", "Chen", common_models.UserTypeAttendee, false, false},
	}
	for _, def := range userDefs {
		u := &user.User{
			Username:    def.username,
			Email:       def.username + "@campfire.local",
			FirstName:   def.first,
			LastName:    def.last,
			UserType:    def.userType,
			IsAdmin:     def.isAdmin,
			IsSuperuser: def.isSuperuser,
			Status:      "active",
		}
		if err := b.userRepo.Upsert(ctx, u); err != nil {
			return err
		}
		b.users[def.key] = u
		progress("User " + def.username)
	}

	facultyDefs := []struct {
		key      string
		user     string
		facility *facility.Facility
	}{
		{"river_faculty", "river_faculty", b.riverBend},
		{"summit_faculty", "summit_faculty", b.summitRidge},
	}
	for _, def := range facultyDefs {
		u := b.users[def.user]
		p := &facility.FacultyProfile{
			UserID:         u.ID,
			Slug:           utils.Slugify(u.FirstName + " " + u.LastName),
			FacilityID:     def.facility.ID,
			OrganizationID: b.cascade.ID,
		}
		if err := b.facilityRepo.UpsertFacultyProfile(ctx, p); err != nil {
			return err
		}
		b.facultyProfs[def.key] = p
		progress("Faculty profile " + u.Username)
	}

	leaderDefs := []struct {
		key     string
		user    string
		faction string
	}{
		{"eagle", "eagle_leader", "eagle"},
		{"aurora", "aurora_leader", "aurora"},
	}
	for _, def := range leaderDefs {
		u := b.users[def.user]
		p := &faction.LeaderProfile{
			UserID:         u.ID,
			Slug:           utils.Slugify(u.FirstName + " " + u.LastName),
			FactionID:      &b.factions[def.faction].ID,
			OrganizationID: b.cascade.ID,
		}
		if err := b.factionRepo.UpsertLeaderProfile(ctx, p); err != nil {
			return err
		}
		b.leaderProfs[def.key] = p
		progress("Leader profile " + u.Username)
	}

	attendeeDefs := []struct {
		key     string
		user    string
		faction string
	}{
		{"amy", "attendee_amy", "eagle_foxes"},
		{"riley", "attendee_riley", "aurora_voyagers"},
	}
	for _, def := range attendeeDefs {
		u := b.users[def.user]
		p := &faction.AttendeeProfile{
			UserID:         u.ID,
			Slug:           utils.Slugify(u.FirstName + " " + u.LastName),
			FactionID:      &b.factions[def.faction].ID,
			OrganizationID: b.cascade.ID,
		}
		if err := b.factionRepo.UpsertAttendeeProfile(ctx, p); err != nil {
			return err
		}
		b.attendProfs[def.key] = p
		progress("Attendee profile " + u.Username)
	}
	return nil
}

func (b *testDataBuilder) createFactionEnrollments(ctx context.Context) error {
	fmt.Println("Creating faction enrollments and personal assignments")

	defs := []struct {
		key      string
		name     string
		faction  string
		session  string
		week     string
		quarters string
	}{
		{"eagle", "Eagle Patrol Week 1", "eagle", "river_bend", "river_w1", "pinecone"},
		{"aurora", "Aurora Crew Summit Cohort", "aurora", "summit_ridge", "summit_w1", "summit_lodge"},
	}
	for _, def := range defs {
		row := &enrollment.FactionEnrollment{
			Name:                 def.name,
			FactionID:            b.factions[def.faction].ID,
			FacilityEnrollmentID: b.sessions[def.session].ID,
			WeekID:               &b.weeks[def.week].ID,
			QuartersID:           &b.quarters[def.quarters].ID,
		}
		if err := b.enrollmentRepo.UpsertFactionEnrollment(ctx, row); err != nil {
			return err
		}
		b.factionEnrs[def.key] = row
		progress(def.name)
	}
	return nil
}

func (b *testDataBuilder) createPersonEnrollments(ctx context.Context) error {
	facultyEnr := &enrollment.FacultyEnrollment{
		FacultyProfileID:     b.facultyProfs["river_faculty"].ID,
		FacilityEnrollmentID: b.sessions["river_bend"].ID,
	}
	if err := b.enrollmentRepo.UpsertFacultyEnrollment(ctx, facultyEnr); err != nil {
		return err
	}
	progress("Donna Rivera faculty assignment")

	leaderDefs := []struct {
		label   string
		profile string
		faction string
	}{
		{"Leo Castor Week 1", "eagle", "eagle"},
		{"Sara Nguyen Summit", "aurora", "aurora"},
	}
	for _, def := range leaderDefs {
		row := &enrollment.LeaderEnrollment{
			LeaderProfileID:     b.leaderProfs[def.profile].ID,
			FactionEnrollmentID: b.factionEnrs[def.faction].ID,
		}
		if err := b.enrollmentRepo.UpsertLeaderEnrollment(ctx, row); err != nil {
			return err
		}
		progress(def.label)
	}

	attendeeDefs := []struct {
		label    string
		profile  string
		faction  string
		quarters string
	}{
		{"Amy Lopez Navigation Track", "amy", "eagle", "riverside"},
		{"Riley Chen Summit Cohort", "riley", "aurora", "summit_lodge"},
	}
	for _, def := range attendeeDefs {
		row := &enrollment.AttendeeEnrollment{
			AttendeeProfileID:   b.attendProfs[def.profile].ID,
			FactionEnrollmentID: b.factionEnrs[def.faction].ID,
			QuartersID:          &b.quarters[def.quarters].ID,
		}
		if err := b.enrollmentRepo.UpsertAttendeeEnrollment(ctx, row); err != nil {
			return err
		}
		progress(def.label)
	}

	activeDefs := []struct {
		user     string
		faction  string
		facility string
	}{
		{"river_faculty", "", "river_bend"},
		{"eagle_leader", "eagle", ""},
		{"aurora_leader", "aurora", ""},
		{"attendee_amy", "eagle", ""},
		{"attendee_riley", "aurora", ""},
	}
	for _, def := range activeDefs {
		u := b.users[def.user]
		active := &enrollment.ActiveEnrollment{UserID: u.ID}
		if def.faction != "" {
			active.FactionEnrollmentID = &b.factionEnrs[def.faction].ID
		}
		if def.facility != "" {
			active.FacilityEnrollmentID = &b.sessions[def.facility].ID
		}
		if err := b.enrollmentRepo.SaveActiveEnrollment(ctx, active); err != nil {
			return err
		}
		progress("Active enrollment for " + u.Username)
	}
	return nil
}
