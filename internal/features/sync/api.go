package sync

import (
	"go-campfire/internal/config"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SyncApi struct {
	Controller *SyncController
	Config     *config.Config
}

func NewSyncApi(controller *SyncController, config *config.Config) *SyncApi {
	return &SyncApi{
		Controller: controller,
		Config:     config,
	}
}

func (api *SyncApi) Setup(app *fiber.App) {
	group := app.Group("/api/sync", middleware.AuthMiddleware(api.Config.SkipAuth))
	group.Post("/run", api.Controller.RunSync)
	group.Get("/logs", api.Controller.ListLogs)
}
