package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// JWTSecret returns the signing key from the loaded configuration.
func JWTSecret() []byte {
	return []byte(AppConfig.JWTSecret)
}

// GenerateAccessToken creates a new JWT access token for the given user
func GenerateAccessToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	})

	return token.SignedString(JWTSecret())
}
