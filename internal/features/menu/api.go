package menu

import (
	"go-campfire/internal/config"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type MenuApi struct {
	Controller *MenuController
	Config     *config.Config
}

func NewMenuApi(controller *MenuController, config *config.Config) *MenuApi {
	return &MenuApi{
		Controller: controller,
		Config:     config,
	}
}

func (api *MenuApi) Setup(app *fiber.App) {
	group := app.Group("/api/menu", middleware.AuthMiddleware(api.Config.SkipAuth))
	group.Get("/", api.Controller.GetMenu)
}
