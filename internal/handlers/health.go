package handlers

import (
	"payport/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

func HealthCheck(c *fiber.Ctx) error {
	store := "connected"
	if repositories.DB == nil || repositories.DB.IsClosed() {
		store = "closed"
	}
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"services": fiber.Map{
			"store": store,
		},
	})
}
