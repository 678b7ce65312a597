package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbearia/internal/config"
	"github.com/BruksfildServices01/barbearia/internal/httperr"
	"github.com/BruksfildServices01/barbearia/internal/middleware"
)

const tokenTTL = 24 * 60 * 60 // segundos

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	if !h.config.AuthEnabled() {
		httperr.BadRequest(c, "auth_disabled", "Login não configurado.")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.config.OwnerPasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Senha incorreta.")
		return
	}

	token, err := h.generateToken()
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": tokenTTL,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": middleware.OwnerSubject,
		"exp": now.Unix() + tokenTTL,
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
