package navigation

import (
	"go-campfire/internal/features/system"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type NavigationController struct {
	Service NavigationService
	Hub     *system.Hub
	Logger  *zap.Logger
}

func NewNavigationController(service NavigationService, hub *system.Hub, logger *zap.Logger) *NavigationController {
	return &NavigationController{Service: service, Hub: hub, Logger: logger}
}

// ListFavorites godoc
//
//	@Summary	Favorite menu keys for the current user
//	@Tags		navigation
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/api/navigation/favorites [get]
func (c *NavigationController) ListFavorites(ctx *fiber.Ctx) error {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	favorites, err := c.Service.FavoriteKeys(ctx.Context(), claims.UserID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load favorites",
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"favorites": favorites,
	})
}

// ToggleFavorite godoc
//
//	@Summary	Toggle a favorite menu key
//	@Tags		navigation
//	@Produce	json
//	@Param		key	path		string	true	"Menu entry key"
//	@Success	200	{object}	map[string]interface{}
//	@Failure	400	{object}	map[string]interface{}
//	@Router		/api/navigation/favorites/{key}/toggle [post]
func (c *NavigationController) ToggleFavorite(ctx *fiber.Ctx) error {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	key := ctx.Params("key")
	favorited, err := c.Service.Toggle(ctx.Context(), claims.UserID, key)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Hub.Broadcast("favorites_changed", fiber.Map{"user_id": claims.UserID})
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"key":       key,
		"favorited": favorited,
	})
}

func (c *NavigationController) AddFavorite(ctx *fiber.Ctx) error {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	key := ctx.Params("key")
	if err := c.Service.Add(ctx.Context(), claims.UserID, key); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"key":       key,
		"favorited": true,
	})
}

func (c *NavigationController) RemoveFavorite(ctx *fiber.Ctx) error {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	key := ctx.Params("key")
	if err := c.Service.Remove(ctx.Context(), claims.UserID, key); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"key":       key,
		"favorited": false,
	})
}
