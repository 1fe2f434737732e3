package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"book-library-api/internal/middleware"
)

// AuthHandler issues bearer tokens for the book detail route in local deployments
type AuthHandler struct {
	authService *middleware.AuthService
	logger      *logrus.Logger
}

// NewAuthHandler creates a new token handler
func NewAuthHandler(authService *middleware.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// TokenRequest represents the token request body
type TokenRequest struct {
	Username string   `json:"username" binding:"required"`
	Email    string   `json:"email" binding:"omitempty,email"`
	Groups   []string `json:"groups"`
}

// TokenResponse represents an issued token
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// @Summary Issue token
// @Description Issue a signed JWT for local development. Only registered when the server runs locally with JWT_SECRET set.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Token subject"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	token, err := h.authService.GenerateToken(req.Username, req.Username, req.Email, req.Groups)
	if err != nil {
		h.logger.WithError(err).Error("Failed to issue token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	h.logger.WithField("username", req.Username).Info("Issued development token")

	c.JSON(http.StatusOK, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
	})
}
