package handlers

import (
	"log/slog"
	"net/http"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/designerabdulhai/hhdcashfinal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles sign-up, login and the session probe endpoints.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvc
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvc) *authHandler {
	return &authHandler{userService: us, tokenService: ts}
}

// RegisterAuthRoutes sets up the public authentication routes. loginLimit
// guards the login endpoint and may be nil.
func RegisterAuthRoutes(r *gin.Engine, us portssvc.UserSvcFacade, ts portssvc.TokenSvc, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(us, ts)

	auth := r.Group("/api/v1/auth")
	{
		if loginLimit != nil {
			auth.POST("/login", loginLimit, h.login)
		} else {
			auth.POST("/login", h.login)
		}
		auth.POST("/register", h.register)
		auth.GET("/status", h.status)
	}
}

// registerMeRoute is mounted inside the authenticated group.
func registerMeRoute(rg *gin.RouterGroup, us portssvc.UserSvcFacade) {
	h := newAuthHandler(us, nil)
	rg.GET("/auth/me", h.me)
}

func (h *authHandler) respondWithToken(c *gin.Context, status int, user *domain.User) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	c.JSON(status, dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)})
}

// login godoc
// @Summary User login
// @Description Authenticates a user by phone and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to log in")
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	h.respondWithToken(c, http.StatusOK, user)
}

// register godoc
// @Summary Register new user
// @Description Creates an account. The very first account becomes the owner, later ones wait for the owner to assign a role.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration Info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Phone already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register user")
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	h.respondWithToken(c, http.StatusCreated, user)
}

// status godoc
// @Summary System status
// @Description Reports whether the owner account exists yet.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SystemStatusResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/status [get]
func (h *authHandler) status(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	initialized, err := h.userService.IsInitialized(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to read system status")
		return
	}
	c.JSON(http.StatusOK, dto.SystemStatusResponse{Initialized: initialized})
}

// me godoc
// @Summary Current user
// @Description Returns the user behind the bearer token, re-read from the database.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID, userID)
	if err != nil {
		if statusFor(err) == http.StatusNotFound {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User no longer exists"})
			return
		}
		respondServiceError(c, logger, err, "Failed to load current user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
