package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reeyo/internal/api/middleware"
	"reeyo/internal/services"
)

// AuthHandler serves login, logout and the current session.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, claims, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"email":      claims.Subject,
		"expires_at": claims.ExpiresAt.Time,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(middleware.GetClaims(c))
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, gin.H{
		"email":      claims.Subject,
		"role":       claims.Role,
		"session_id": claims.ID,
		"expires_at": claims.ExpiresAt.Time,
	})
}
