package pagecontext

import (
	"go-campfire/internal/features/user"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PageContextController struct {
	Service     PageContextService
	UserService user.UserService
	Logger      *zap.Logger
}

func NewPageContextController(service PageContextService, userService user.UserService, logger *zap.Logger) *PageContextController {
	return &PageContextController{
		Service:     service,
		UserService: userService,
		Logger:      logger,
	}
}

// GetContext godoc
//
//	@Summary		Page context for the current user
//	@Description	Menus, profile, palette, breadcrumbs and info row in one payload
//	@Tags			context
//	@Produce		json
//	@Param			X-Active-Enrollment	header		string	false	"Selected enrollment id"
//	@Param			path				query		string	false	"Page path breadcrumbs are built for"
//	@Success		200					{object}	PageContext
//	@Router			/api/context [get]
func (c *PageContextController) GetContext(ctx *fiber.Ctx) error {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	u, err := c.UserService.GetUser(ctx.Context(), claims.UserID)
	if err != nil {
		u = nil
	}

	path := ctx.Query("path")
	if path == "" {
		path = "/"
	}

	pc := c.Service.Build(ctx.Context(), u, path, ctx.Get("X-Active-Enrollment"))
	return ctx.Status(fiber.StatusOK).JSON(pc)
}
