package utils

import (
	"errors"
	"time"

	"payport/internal/config"
	"payport/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAdminToken signs a session token for the admin user.
// The signing secret comes from JWT_SECRET.
func GenerateAdminToken(username string, ttl time.Duration) (string, error) {
	secret := config.GetEnv("JWT_SECRET", "payport")

	now := time.Now()
	claims := models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "payport-api",
			Subject:   username,
		},
		Username: username,
		Role:     "admin",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAdminToken parses and validates a session token string.
func ParseAdminToken(tokenStr string) (*models.AdminClaims, error) {
	secret := config.GetEnv("JWT_SECRET", "payport")

	token, err := jwt.ParseWithClaims(tokenStr, &models.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
