package handlers

import (
	"fmt"
	"log"

	"payport/internal/services/dashboard"
	"payport/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard returns the derived counters. The total amount is formatted to
// two decimal places alongside the raw value.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	stats, err := h.dashboardService.Stats(c.Context())
	if err != nil {
		log.Printf("failed to compute dashboard stats: %v", err)
		return utils.InternalError(c, "Failed to compute dashboard")
	}
	return utils.Success(c, fiber.Map{
		"stats":                stats,
		"formattedTotalAmount": fmt.Sprintf("%.2f", stats.TotalAmount),
	})
}

// GetUsers returns the user-management rows projected from the transaction
// history. There is no separate user store (see DESIGN.md).
func (h *DashboardHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.dashboardService.Users(c.Context())
	if err != nil {
		log.Printf("failed to list users: %v", err)
		return utils.InternalError(c, "Failed to fetch users")
	}
	return utils.Success(c, fiber.Map{"users": users})
}

// DeleteUser removes every record under the given email, rewriting the shared
// storage key exactly as the original portal did.
func (h *DashboardHandler) DeleteUser(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return utils.BadRequest(c, "Email is required")
	}

	log.Printf("admin deleting user %s", email)
	if err := h.dashboardService.DeleteUser(c.Context(), email); err != nil {
		log.Printf("failed to delete user %s: %v", email, err)
		return utils.InternalError(c, "Failed to delete user")
	}
	return utils.Success(c, fiber.Map{"message": "User deleted successfully"})
}
