package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/designerabdulhai/hhdcashfinal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService  portssvc.UserSvcFacade
	staffService portssvc.StaffSvc
}

func newUserHandler(us portssvc.UserSvcFacade, ss portssvc.StaffSvc) *userHandler {
	return &userHandler{
		userService:  us,
		staffService: ss,
	}
}

// RegisterUserRoutes registers all user-related routes.
func RegisterUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, staffService portssvc.StaffSvc) {
	h := newUserHandler(userService, staffService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)    // owner only
		users.POST("", h.createStaff) // owner only
		users.GET("/:user_id", h.getUser)
		users.PUT("/:user_id", h.updateUser)
		users.DELETE("/:user_id", h.deleteUser)
		users.PUT("/:user_id/permissions", h.updateGlobalPermissions)
		users.GET("/:user_id/cashbooks", h.listAssignedCashbooks)
	}
}

// createStaff godoc
// @Summary Add a team member
// @Description Creates a user with a role and global cashbook flags. Owner only.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateStaffRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 409 {object} ErrorResponse "Phone already registered"
// @Failure 500 {object} ErrorResponse "Failed to create user"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create staff request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	createdUser, err := h.userService.CreateStaff(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create user")
		return
	}

	logger.Info("User created successfully", slog.String("new_user_id", createdUser.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(createdUser))
}

// getUser godoc
// @Summary Get a user by ID
// @Description Users may read themselves, the owner may read anyone.
// @Tags users
// @Produce  json
// @Param   user_id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve user"
// @Security BearerAuth
// @Router /users/{user_id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("user_id"), loggedInUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Description Lists every active user. Owner only.
// @Tags users
// @Produce  json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 500 {object} ErrorResponse "Failed to list users"
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), loggedInUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list users")
		return
	}
	logger.Debug("Users listed", slog.Int("count", len(users)))
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// updateUser godoc
// @Summary Update a user
// @Description Users edit their own profile. The owner may also change roles.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user_id path string true "User ID"
// @Param   user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to update user"
// @Security BearerAuth
// @Router /users/{user_id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("user_id"), req, loggedInUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update user")
		return
	}
	logger.Info("User updated", slog.String("target_user_id", user.UserID))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateGlobalPermissions godoc
// @Summary Set global cashbook flags
// @Description Controls whether a user may create cashbooks and archive them. Owner only.
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user_id path string true "User ID"
// @Param   flags body dto.UpdateGlobalPermissionsRequest true "Flags"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{user_id}/permissions [put]
func (h *userHandler) updateGlobalPermissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateGlobalPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateGlobalPermissions(c.Request.Context(), c.Param("user_id"), req, loggedInUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update permissions")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Removes a team member and their cashbook assignments. Owner only.
// @Tags users
// @Param   user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Cannot delete yourself"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Failed to delete user"
// @Security BearerAuth
// @Router /users/{user_id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	targetID := c.Param("user_id")

	if err := h.userService.DeleteUser(c.Request.Context(), targetID, loggedInUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete user")
		return
	}
	logger.Info("User deleted", slog.String("target_user_id", targetID))
	c.Status(http.StatusNoContent)
}

// listAssignedCashbooks godoc
// @Summary Cashbooks assigned to a user
// @Tags users
// @Produce  json
// @Param   user_id path string true "User ID"
// @Success 200 {object} dto.ListCashbooksResponse
// @Failure 403 {object} ErrorResponse "Not the owner"
// @Security BearerAuth
// @Router /users/{user_id}/cashbooks [get]
func (h *userHandler) listAssignedCashbooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loggedInUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	cashbooks, err := h.staffService.ListAssignedCashbooks(c.Request.Context(), c.Param("user_id"), loggedInUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list assigned cashbooks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCashbooksResponse(cashbooks))
}
