package dashboard

import (
	"go-campfire/internal/config"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	Controller *DashboardController
	Config     *config.Config
}

func NewDashboardApi(controller *DashboardController, config *config.Config) *DashboardApi {
	return &DashboardApi{
		Controller: controller,
		Config:     config,
	}
}

func (api *DashboardApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboards", middleware.AuthMiddleware(api.Config.SkipAuth))
	group.Get("/:portal", api.Controller.GetDashboard)
	group.Get("/:portal/layout", api.Controller.GetLayout)
	group.Put("/:portal/layout", api.Controller.SaveLayout)
}
