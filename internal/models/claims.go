package models

import "github.com/golang-jwt/jwt/v5"

// AdminClaims is the JWT payload issued on a successful admin login.
type AdminClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin checks the role carried by the claims.
func (c *AdminClaims) IsAdmin() bool {
	return c.Role == "admin"
}
