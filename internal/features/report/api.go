package report

import (
	"go-campfire/internal/config"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	Controller *ReportController
	Config     *config.Config
}

func NewReportApi(controller *ReportController, config *config.Config) *ReportApi {
	return &ReportApi{
		Controller: controller,
		Config:     config,
	}
}

func (api *ReportApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports", middleware.AuthMiddleware(api.Config.SkipAuth))
	group.Get("/enrollments.xlsx", api.Controller.ExportEnrollments)
}
