package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-api/internal/logger"
	"studio-api/internal/models"
	"studio-api/internal/services"
	"studio-api/internal/utils"
)

type AuthHandler struct {
	service *services.AuthService
	log     *logger.Logger
}

func NewAuthHandler(service *services.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Username and password are required"))
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, utils.ErrorResponse("Invalid username or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error logging in"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
