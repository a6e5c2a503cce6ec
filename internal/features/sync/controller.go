package sync

import (
	"go-campfire/internal/features/system"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SyncController struct {
	Service SyncService
	Hub     *system.Hub
	Logger  *zap.Logger
}

func NewSyncController(service SyncService, hub *system.Hub, logger *zap.Logger) *SyncController {
	return &SyncController{Service: service, Hub: hub, Logger: logger}
}

// RunSync godoc
//
//	@Summary	Run the legacy roster sync now
//	@Tags		sync
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	403	{object}	map[string]interface{}
//	@Router		/api/sync/run [post]
func (c *SyncController) RunSync(ctx *fiber.Ctx) error {
	claims, ok := middleware.Claims(ctx)
	if !ok || !claims.IsAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "admin only",
		})
	}

	processed, err := c.Service.RunRosterSync(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":     err.Error(),
			"processed": processed,
		})
	}
	c.Hub.Broadcast("roster_synced", fiber.Map{"processed": processed})
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "success",
		"processed": processed,
	})
}

func (c *SyncController) ListLogs(ctx *fiber.Ctx) error {
	claims, ok := middleware.Claims(ctx)
	if !ok || !claims.IsAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "admin only",
		})
	}

	logs, err := c.Service.ListLogs(ctx.Context(), int64(ctx.QueryInt("limit", 20)))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list sync logs",
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"logs": logs,
	})
}
