// Package middleware provides HTTP middleware for the Gin router.
//
// Go Learning Note — Middleware Pattern (Gin):
// In Gin, middleware is any gin.HandlerFunc. Each one runs, optionally calls
// c.Next() to pass control down the chain, and calls c.Abort() to stop it.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reeyo/internal/services"
	"reeyo/pkg/auth"
)

// Context keys for the authenticated session.
const (
	ClaimsKey  = "claims"
	SessionKey = "session_id"
)

// RequireAdmin validates the bearer token and stores its claims. The token
// id doubles as the session id that keys the admin's detail panels.
func RequireAdmin(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := authService.Authenticate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}
		if claims.Role != services.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(SessionKey, claims.ID)
		c.Request = c.Request.WithContext(services.WithActor(c.Request.Context(), claims.Subject))
		c.Next()
	}
}

// GetClaims returns the claims stored by RequireAdmin.
func GetClaims(c *gin.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsKey)
	return claims.(*auth.Claims)
}

// GetSessionID returns the session id stored by RequireAdmin.
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
