package api

import (
	"errors"
	"net/http"

	reqdto "cape-tours-api/internal/handler/dto/request"
	resdto "cape-tours-api/internal/handler/dto/response"
	"cape-tours-api/internal/handler/httperr"
	"cape-tours-api/internal/handler/middleware"
	"cape-tours-api/internal/pkg/config"
	"cape-tours-api/internal/pkg/cookie"
	"cape-tours-api/internal/pkg/jwt"
	"cape-tours-api/internal/usecase/commands"
	"cape-tours-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	userQueries queries.UserQueries,
	jwtService *jwt.Service,
	cookieCfg config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		jwtService:   jwtService,
		cookieCfg:    cookieCfg,
	}
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.JSON(c, http.StatusBadRequest, httperr.KindValidationFailed, "Invalid request format")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials),
			errors.Is(err, commands.ErrUserNotFound):
			httperr.JSON(c, http.StatusUnauthorized, httperr.KindUnauthorized, "Invalid email or password")
		case errors.Is(err, commands.ErrUserInactive):
			httperr.JSON(c, http.StatusForbidden, httperr.KindForbidden, "Account is inactive")
		case errors.Is(err, commands.ErrAuthenticationFailed):
			httperr.JSON(c, http.StatusBadRequest, httperr.KindValidationFailed, "Invalid request data")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{UserID: result.UserID})
}

// @Summary Refresh tokens
// @Description Rotate the access and refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		httperr.JSON(c, http.StatusUnauthorized, httperr.KindUnauthorized, "Refresh token required")
		return
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTokenValidation),
			errors.Is(err, commands.ErrUserNotFound):
			httperr.JSON(c, http.StatusUnauthorized, httperr.KindUnauthorized, "Invalid or expired refresh token")
		case errors.Is(err, commands.ErrUserInactive):
			httperr.JSON(c, http.StatusForbidden, httperr.KindForbidden, "Account is inactive")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.Status(http.StatusNoContent)
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.JSON(c, http.StatusUnauthorized, httperr.KindUnauthorized, "User not authenticated")
		return
	}

	view, err := h.userQueries.GetByID(c.Request.Context(), actor.UserID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.JSON(c, http.StatusNotFound, httperr.KindNotFound, "User not found")
		default:
			httperr.JSON(c, http.StatusInternalServerError, httperr.KindInternal, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(view))
}
