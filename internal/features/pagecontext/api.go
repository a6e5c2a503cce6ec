package pagecontext

import (
	"go-campfire/internal/config"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PageContextApi struct {
	Controller *PageContextController
	Config     *config.Config
}

func NewPageContextApi(controller *PageContextController, config *config.Config) *PageContextApi {
	return &PageContextApi{
		Controller: controller,
		Config:     config,
	}
}

func (api *PageContextApi) Setup(app *fiber.App) {
	group := app.Group("/api/context", middleware.AuthMiddleware(api.Config.SkipAuth))
	group.Get("/", api.Controller.GetContext)
}
