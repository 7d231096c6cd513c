package handlers

import (
	"net/http"
	"time"

	"github.com/dmleach/frock/models"
	"github.com/dmleach/frock/services"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues admin tokens.
type AuthHandler struct {
	svc        services.AuthService
	jwtSecret  string
	jwtExpires time.Duration
}

// NewAuthHandler constructs the login handler with its JWT parameters.
func NewAuthHandler(svc services.AuthService, jwtSecret string, jwtExp time.Duration) *AuthHandler {
	return &AuthHandler{svc: svc, jwtSecret: jwtSecret, jwtExpires: jwtExp}
}

// Login handles POST /auth/login (public).
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := h.svc.Login(req, h.jwtSecret, h.jwtExpires)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Token: token})
}
