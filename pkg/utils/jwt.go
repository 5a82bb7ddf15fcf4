package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserClaims struct {
	UserID   string
	Username string
	Role     string
}

// GenerateToken issues a signed HS256 token carrying user identity.
func GenerateToken(claims UserClaims, secret string, expiryHours int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  claims.UserID,
		"username": claims.Username,
		"role":     claims.Role,
		"exp":      time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// ValidateToken parses and verifies a token, returning the embedded claims.
func ValidateToken(tokenString, secret string) (*UserClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || username == "" {
		return nil, fmt.Errorf("token missing identity claims")
	}

	return &UserClaims{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}
