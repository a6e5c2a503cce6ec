package system

import (
	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	Controller *HealthController
}

func NewHealthApi(controller *HealthController) *HealthApi {
	return &HealthApi{
		Controller: controller,
	}
}

func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/api/health", h.Controller.Health)
}
