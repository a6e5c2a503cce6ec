package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-campfire/internal/common/api"
	"go-campfire/internal/cache"
	"go-campfire/internal/config"
	"go-campfire/internal/database"
	"go-campfire/internal/features/course"
	"go-campfire/internal/features/dashboard"
	"go-campfire/internal/features/enrollment"
	"go-campfire/internal/features/facility"
	"go-campfire/internal/features/faction"
	"go-campfire/internal/features/menu"
	"go-campfire/internal/features/navigation"
	"go-campfire/internal/features/organization"
	"go-campfire/internal/features/pagecontext"
	"go-campfire/internal/features/report"
	"go-campfire/internal/features/sync"
	"go-campfire/internal/features/system"
	"go-campfire/internal/features/user"
	"go-campfire/internal/logger"
	"go-campfire/internal/middleware"
	"go-campfire/internal/tasks"
	"go-campfire/pkg/utils"

	_ "go-campfire/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	// Extract the X-Campfire-Portal header for downstream services
	app.Use(middleware.PortalMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.SetSecret(cfg.JWTSecret)
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// @title           Campfire Connections API
// @version         1.0
// @description     Camp management core: menus, dashboards, page context and navigation preferences.

// @host            localhost:8000
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,
			cache.NewCache,
			tasks.NewDispatcher,
			system.NewHub,

			// Repositories
			organization.NewOrganizationRepository,
			facility.NewFacilityRepository,
			faction.NewFactionRepository,
			course.NewCourseRepository,
			enrollment.NewEnrollmentRepository,
			user.NewUserRepository,
			navigation.NewNavigationRepository,
			dashboard.NewDashboardRepository,
			sync.NewSyncLogRepository,

			// Services
			user.NewUserService,
			menu.NewMenuService,
			navigation.NewNavigationService,
			dashboard.NewDashboardService,
			pagecontext.NewPageContextService,
			report.NewReportService,
			sync.NewSyncService,

			// Interface adapters
			func(s navigation.NavigationService) menu.FavoriteSource { return s },
			func(cfg *config.Config) sync.RosterSource {
				return sync.NewPostgresRosterSource(cfg.RosterSyncDSN)
			},

			// Controllers
			menu.NewMenuController,
			navigation.NewNavigationController,
			dashboard.NewDashboardController,
			pagecontext.NewPageContextController,
			report.NewReportController,
			sync.NewSyncController,
			system.NewWebSocketController,
			system.NewHealthController,

			// API Routes
			AsRoute(menu.NewMenuApi),
			AsRoute(navigation.NewNavigationApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(pagecontext.NewPageContextApi),
			AsRoute(report.NewReportApi),
			AsRoute(sync.NewSyncApi),
			AsRoute(system.NewWebSocketApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			sync.NewScheduler,
		),
	)

	app.Run()
}
