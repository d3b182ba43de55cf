// Package middleware provides HTTP middleware for the application,
// chiefly the admin session check guarding the dashboard routes.
package middleware

import (
	"log"
	"strings"

	"payport/internal/services/auth"
	"payport/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates admin session tokens. A token is accepted only
// while the persisted session flag is up, so logout invalidates every token
// issued before it.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Handler checks the Authorization header, the token signature and the
// session flag, then stores the claims in the request context.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := utils.ParseAdminToken(tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}
	if !claims.IsAdmin() {
		return utils.Unauthorized(c, "invalid token")
	}

	active, err := m.authService.SessionActive()
	if err != nil {
		log.Printf("session flag check failed: %v", err)
		return utils.InternalError(c, "failed to check session")
	}
	if !active {
		return utils.Unauthorized(c, "session expired")
	}

	c.Locals("claims", claims)
	return c.Next()
}
