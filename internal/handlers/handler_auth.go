package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dailyforge/journal_backend/internal/core/ports/services"
	"github.com/dailyforge/journal_backend/internal/dto"
	"github.com/dailyforge/journal_backend/internal/middleware"
	"github.com/dailyforge/journal_backend/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	tokenService   portssvc.TokenSvcFacade
	defaultSubject string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		tokenService:   ts,
		defaultSubject: cfg.DefaultSubject,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, ts portssvc.TokenSvcFacade, ipLimiter *limiter.Limiter) {
	h := NewAuthHandler(ts, cfg)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}
}

// Login godoc
// @Summary Issue an access token
// @Description Issues a bearer token for the configured subject. Credential verification is deliberately not performed; the identity is a fixed stub.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	token, err := h.tokenService.IssueToken(h.defaultSubject)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token, TokenType: "bearer"})
}
