package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/designerabdulhai/hhdcashfinal/internal/middleware"
	"github.com/gin-gonic/gin"
)

type staffHandler struct {
	staffService portssvc.StaffSvc
}

// RegisterStaffRoutes registers per-cashbook staff routes. All of them are owner only.
func RegisterStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvc) {
	h := &staffHandler{staffService: staffService}

	staff := rg.Group("/cashbooks/:cashbook_id/staff")
	{
		staff.GET("", h.listStaff)
		staff.POST("", h.assignStaff)
		staff.PUT("/:user_id", h.updateStaff)
		staff.DELETE("/:user_id", h.removeStaff)
	}
}

// listStaff godoc
// @Summary List staff of a cashbook
// @Tags staff
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Success 200 {object} dto.ListStaffResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/staff [get]
func (h *staffHandler) listStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	members, err := h.staffService.ListStaff(c.Request.Context(), c.Param("cashbook_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list staff")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStaffResponse(members))
}

// assignStaff godoc
// @Summary Assign a user to a cashbook
// @Tags staff
// @Accept json
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Param staff body dto.AssignStaffRequest true "Assignment"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/staff [post]
func (h *staffHandler) assignStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	staff, err := h.staffService.AssignStaff(c.Request.Context(), c.Param("cashbook_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to assign staff")
		return
	}
	logger.Info("Staff assigned", slog.String("cashbook_id", staff.CashbookID), slog.String("staff_user_id", staff.UserID))
	c.JSON(http.StatusCreated, dto.ToStaffResponse(staff))
}

// updateStaff godoc
// @Summary Change the rights of a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Param user_id path string true "User ID"
// @Param staff body dto.UpdateStaffPermissionsRequest true "Rights"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/staff/{user_id} [put]
func (h *staffHandler) updateStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateStaffPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	staff, err := h.staffService.UpdateStaffPermissions(c.Request.Context(), c.Param("cashbook_id"), c.Param("user_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update staff")
		return
	}
	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// removeStaff godoc
// @Summary Remove a staff member from a cashbook
// @Tags staff
// @Param cashbook_id path string true "Cashbook ID"
// @Param user_id path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/staff/{user_id} [delete]
func (h *staffHandler) removeStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.staffService.RemoveStaff(c.Request.Context(), c.Param("cashbook_id"), c.Param("user_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to remove staff")
		return
	}
	c.Status(http.StatusNoContent)
}
