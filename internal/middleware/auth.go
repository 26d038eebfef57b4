// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"volunteerhub/internal/config"
	"volunteerhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// isJWTError reports whether the verification failure came from the JWT
// library itself (malformed, expired, bad signature) as opposed to an
// unexpected internal failure.
func isJWTError(err error) bool {
	for _, sentinel := range []error{
		jwt.ErrTokenMalformed,
		jwt.ErrTokenUnverifiable,
		jwt.ErrTokenSignatureInvalid,
		jwt.ErrSignatureInvalid,
		jwt.ErrTokenExpired,
		jwt.ErrTokenNotValidYet,
		jwt.ErrTokenInvalidClaims,
		jwt.ErrTokenInvalidAudience,
		jwt.ErrTokenInvalidIssuer,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// AuthRequired is a middleware that enforces authentication for protected routes.
// Missing header yields 401 "no token found", a malformed or expired token
// yields 401 "invalid token", and a non-JWT verification failure yields 500.
func AuthRequired(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("no token found"))
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("no token found"))
	}

	tokenString := parts[1]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		if isJWTError(err) {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("invalid token"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if !token.Valid {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("invalid token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("invalid token"))
	}

	// Subject claim carries the user ID as a string (RFC 7519)
	subStr, ok := claims["sub"].(string)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("invalid token"))
	}
	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("invalid token"))
	}

	c.Locals("userID", uint(userIDVal))
	if username, ok := claims["username"].(string); ok {
		c.Locals("username", username)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}

	// Sync to UserContext so the context-aware logger sees the user ID
	ctx := context.WithValue(c.UserContext(), UserIDKey, uint(userIDVal))
	c.SetUserContext(ctx)

	return c.Next()
}

// AdminRequired rejects callers whose token does not carry the admin role.
// Must be placed after AuthRequired so the role claim is available in locals.
func AdminRequired(c *fiber.Ctx) error {
	role, _ := c.Locals("userRole").(string)
	if role != string(models.UserRoleAdmin) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Admin access required"))
	}
	return c.Next()
}
