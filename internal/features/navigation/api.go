package navigation

import (
	"go-campfire/internal/config"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type NavigationApi struct {
	Controller *NavigationController
	Config     *config.Config
}

func NewNavigationApi(controller *NavigationController, config *config.Config) *NavigationApi {
	return &NavigationApi{
		Controller: controller,
		Config:     config,
	}
}

func (api *NavigationApi) Setup(app *fiber.App) {
	group := app.Group("/api/navigation", middleware.AuthMiddleware(api.Config.SkipAuth))
	group.Get("/favorites", api.Controller.ListFavorites)
	group.Post("/favorites/:key/toggle", api.Controller.ToggleFavorite)
	group.Post("/favorites/:key", api.Controller.AddFavorite)
	group.Delete("/favorites/:key", api.Controller.RemoveFavorite)
}
