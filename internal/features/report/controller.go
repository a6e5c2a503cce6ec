package report

import (
	"fmt"

	"go-campfire/internal/features/user"
	"go-campfire/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportController struct {
	Service     ReportService
	UserService user.UserService
	Logger      *zap.Logger
}

func NewReportController(service ReportService, userService user.UserService, logger *zap.Logger) *ReportController {
	return &ReportController{
		Service:     service,
		UserService: userService,
		Logger:      logger,
	}
}

// ExportEnrollments godoc
//
//	@Summary	Download the enrollment roster as xlsx
//	@Tags		reports
//	@Produce	application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param		faction	query	string	false	"Faction slug to scope to"
//	@Success	200
//	@Router		/api/reports/enrollments.xlsx [get]
func (c *ReportController) ExportEnrollments(ctx *fiber.Ctx) error {
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

	data, filename, err := c.Service.ExportEnrollmentRoster(ctx.Context(), u, profile, ctx.Query("faction"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return ctx.Send(data)
}
