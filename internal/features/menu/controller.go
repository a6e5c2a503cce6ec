package menu

import (
	"context"

	"go-campfire/internal/features/user"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FavoriteSource yields the user's saved favorite menu keys in insertion
// order. Implemented by the navigation feature.
type FavoriteSource interface {
	FavoriteKeys(ctx context.Context, userID string) ([]string, error)
}

type MenuController struct {
	MenuService MenuService
	UserService user.UserService
	Favorites   FavoriteSource
	Logger      *zap.Logger
}

func NewMenuController(menuService MenuService, userService user.UserService, favorites FavoriteSource, logger *zap.Logger) *MenuController {
	return &MenuController{
		MenuService: menuService,
		UserService: userService,
		Favorites:   favorites,
		Logger:      logger,
	}
}

// GetMenu godoc
//
//	@Summary		Navigation menu for the current user
//	@Description	Resolved primary and quick menus plus static top links
//	@Tags			menu
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Router			/api/menu [get]
func (c *MenuController) GetMenu(ctx *fiber.Ctx) error {
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

	profile, _ := c.UserService.GetProfileOrPlaceholder(ctx.Context(), u)

	var favorites []string
	if c.Favorites != nil && u != nil {
		favorites, err = c.Favorites.FavoriteKeys(ctx.Context(), u.ID.Hex())
		if err != nil {
			c.Logger.Warn("favorite keys lookup failed", zap.String("action", "menu_get"), zap.Error(err))
			favorites = nil
		}
	}

	m := c.MenuService.BuildMenuForUser(ctx.Context(), u, profile, favorites)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"menu":     m,
		"toplinks": c.MenuService.TopLinks(),
	})
}
