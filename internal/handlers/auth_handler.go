package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rgopal/chitfund/internal/auth"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an operator account and issues a session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username and password required"})
		return
	}

	user, ok := h.store.UserByUsername(req.Username)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": auth.ErrInvalidCredentials.Error()})
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": auth.ErrInvalidCredentials.Error()})
		return
	}

	token, err := h.jwt.Generate(user)
	if err != nil {
		slog.Error("Login: token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create session"})
		return
	}

	slog.Info("Operator logged in", "user_id", user.UserID, "role", user.Role)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"userId": user.UserID,
			"name":   user.Name,
			"role":   user.Role,
		},
	})
}
