package handlers

import (
	"errors"
	"log"

	"payport/internal/services/auth"
	"payport/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates the admin and returns a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}
	if input.Username == "" || input.Password == "" {
		return utils.BadRequest(c, "Username and password are required")
	}

	token, err := h.authService.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid username or password")
		}
		log.Printf("admin login failed: %v", err)
		return utils.InternalError(c, "Authentication failed")
	}

	return utils.Success(c, fiber.Map{"token": token})
}

// Logout lowers the session flag; outstanding tokens stop working.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(); err != nil {
		log.Printf("admin logout failed: %v", err)
		return utils.InternalError(c, "Failed to logout")
	}
	return utils.Success(c, fiber.Map{"message": "Successfully logged out"})
}
