package main

import (
	"github.com/gofiber/fiber/v2"
)

// newOpsServer exposes liveness and queue-depth endpoints for probes and
// operators. It serves no part of the job pipeline.
func newOpsServer(c *Container) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "docworker ops",
		DisableStartupMessage: true,
	})

	app.Get("/health", func(ctx *fiber.Ctx) error {
		if err := c.Redis.Ping(ctx.Context()).Err(); err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"redis":  err.Error(),
			})
		}
		if err := c.DB.PingContext(ctx.Context()); err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unhealthy",
				"database": err.Error(),
			})
		}
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/api/v1/queues", func(ctx *fiber.Ctx) error {
		work, err := c.Queue.Len(ctx.Context(), c.Config.Worker.Queue)
		if err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		dlq, err := c.Queue.Len(ctx.Context(), c.Config.Worker.DeadLetterQueue)
		if err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.JSON(fiber.Map{
			"queue":       c.Config.Worker.Queue,
			"depth":       work,
			"dlq":         c.Config.Worker.DeadLetterQueue,
			"dlq_depth":   dlq,
			"max_retries": c.Config.Worker.MaxRetries,
		})
	})

	return app
}
