package dashboard

import (
	"errors"

	"go-campfire/internal/features/system"
	"go-campfire/internal/features/user"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardController struct {
	Service     DashboardService
	UserService user.UserService
	Hub         *system.Hub
	Logger      *zap.Logger
}

func NewDashboardController(service DashboardService, userService user.UserService, hub *system.Hub, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		Service:     service,
		UserService: userService,
		Hub:         hub,
		Logger:      logger,
	}
}

type saveLayoutRequest struct {
	Layout        []string `json:"layout"`
	HiddenWidgets []string `json:"hidden_widgets"`
}

// GetDashboard godoc
//
//	@Summary	Widgets for one portal
//	@Tags		dashboard
//	@Produce	json
//	@Param		portal	path		string	true	"Portal key"
//	@Success	200		{object}	map[string]interface{}
//	@Failure	404		{object}	map[string]interface{}
//	@Router		/api/dashboards/{portal} [get]
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	u, err := c.UserService.GetUser(ctx.Context(), claims.UserID)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unknown user",
		})
	}
	profile, _ := c.UserService.GetProfileOrPlaceholder(ctx.Context(), u)

	portal, widgets, err := c.Service.BuildDashboard(ctx.Context(), u, profile, ctx.Params("portal"))
	if err != nil {
		if errors.Is(err, ErrUnknownPortal) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "unknown portal",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to build dashboard",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"portal":  portal,
		"widgets": widgets,
	})
}

// GetLayout godoc
//
//	@Summary	Stored widget layout for a portal
//	@Tags		dashboard
//	@Produce	json
//	@Param		portal	path		string	true	"Portal key"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/api/dashboards/{portal}/layout [get]
func (c *DashboardController) GetLayout(ctx *fiber.Ctx) error {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	u, err := c.UserService.GetUser(ctx.Context(), claims.UserID)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unknown user",
		})
	}

	layout, err := c.Service.GetLayout(ctx.Context(), u, ctx.Params("portal"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load layout",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"layout": layout,
	})
}

// SaveLayout godoc
//
//	@Summary	Save widget order and hidden widgets for a portal
//	@Tags		dashboard
//	@Accept		json
//	@Produce	json
//	@Param		portal	path		string				true	"Portal key"
//	@Param		body	body		saveLayoutRequest	true	"Layout"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/api/dashboards/{portal}/layout [put]
func (c *DashboardController) SaveLayout(ctx *fiber.Ctx) error {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	var req saveLayoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid body",
		})
	}

	u, err := c.UserService.GetUser(ctx.Context(), claims.UserID)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unknown user",
		})
	}

	layout, err := c.Service.SaveLayout(ctx.Context(), u, ctx.Params("portal"), req.Layout, req.HiddenWidgets)
	if err != nil {
		if errors.Is(err, ErrUnknownPortal) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "unknown portal",
			})
		}
		c.Logger.Error("layout save failed", zap.String("action", "layout_save"), zap.String("actor_id", claims.UserID), zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save layout",
		})
	}

	c.Hub.Broadcast("layout_changed", fiber.Map{
		"portal":  ctx.Params("portal"),
		"user_id": claims.UserID,
	})
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"layout": layout,
	})
}
