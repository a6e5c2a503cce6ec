package system

import (
	"go-campfire/internal/database"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

type HealthController struct {
	Mongo *database.MongodbDB
}

func NewHealthController(mongo *database.MongodbDB) *HealthController {
	return &HealthController{Mongo: mongo}
}

// Health godoc
//
//	@Summary	Service liveness and database reachability
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/api/health [get]
func (c *HealthController) Health(ctx *fiber.Ctx) error {
	dbStatus := "ok"
	if err := c.Mongo.DB.RunCommand(ctx.Context(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		dbStatus = "unreachable"
	}
	status := fiber.StatusOK
	if dbStatus != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return ctx.Status(status).JSON(fiber.Map{
		"status":   "up",
		"database": dbStatus,
	})
}
