package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/designerabdulhai/hhdcashfinal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashbookHandler handles HTTP requests related to cashbooks and the recycle bin.
type cashbookHandler struct {
	cashbookService portssvc.CashbookSvcFacade
}

func newCashbookHandler(cs portssvc.CashbookSvcFacade) *cashbookHandler {
	return &cashbookHandler{cashbookService: cs}
}

// RegisterCashbookRoutes registers cashbook routes on the authenticated group.
func RegisterCashbookRoutes(rg *gin.RouterGroup, cashbookService portssvc.CashbookSvcFacade) {
	h := newCashbookHandler(cashbookService)

	cashbooks := rg.Group("/cashbooks")
	{
		cashbooks.GET("", h.listCashbooks)
		cashbooks.POST("", h.createCashbook)
		cashbooks.GET("/:cashbook_id", h.getCashbook)
		cashbooks.PUT("/:cashbook_id", h.updateCashbook)
		cashbooks.DELETE("/:cashbook_id", h.softDeleteCashbook)
		cashbooks.PUT("/:cashbook_id/status", h.setCashbookStatus)
		cashbooks.POST("/:cashbook_id/restore", h.restoreCashbook)
	}
	rg.GET("/recycle-bin/cashbooks", h.listDeletedCashbooks)
}

// listCashbooks godoc
// @Summary List cashbooks
// @Description Lists the cashbooks the caller may see, each with the caller's permissions.
// @Tags cashbooks
// @Produce json
// @Param status query string false "ACTIVE or COMPLETED"
// @Param categoryID query string false "Category filter"
// @Param search query string false "Name search"
// @Success 200 {object} dto.ListCashbooksResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks [get]
func (h *cashbookHandler) listCashbooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var params dto.ListCashbooksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	views, err := h.cashbookService.ListCashbooks(c.Request.Context(), userID, params.ToFilter())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list cashbooks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCashbookViewsResponse(views))
}

// createCashbook godoc
// @Summary Create a cashbook
// @Description Requires the global create flag. Listed staff are assigned right away.
// @Tags cashbooks
// @Accept json
// @Produce json
// @Param cashbook body dto.CreateCashbookRequest true "Cashbook"
// @Success 201 {object} dto.CashbookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks [post]
func (h *cashbookHandler) createCashbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateCashbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cashbook, err := h.cashbookService.CreateCashbook(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create cashbook")
		return
	}
	logger.Info("Cashbook created", slog.String("cashbook_id", cashbook.CashbookID))
	c.JSON(http.StatusCreated, dto.ToCashbookResponse(cashbook))
}

// getCashbook godoc
// @Summary Get a cashbook
// @Description Returns the cashbook with its balance. Cashbooks the caller may not see are reported as missing.
// @Tags cashbooks
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Success 200 {object} dto.CashbookDetailResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id} [get]
func (h *cashbookHandler) getCashbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	detail, err := h.cashbookService.GetCashbook(c.Request.Context(), c.Param("cashbook_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve cashbook")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashbookDetailResponse(detail))
}

// updateCashbook godoc
// @Summary Update a cashbook
// @Tags cashbooks
// @Accept json
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Param cashbook body dto.UpdateCashbookRequest true "Fields to update"
// @Success 200 {object} dto.CashbookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id} [put]
func (h *cashbookHandler) updateCashbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateCashbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cashbook, err := h.cashbookService.UpdateCashbook(c.Request.Context(), c.Param("cashbook_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update cashbook")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashbookResponse(cashbook))
}

// setCashbookStatus godoc
// @Summary Complete or reopen a cashbook
// @Description Requires the archive right on the cashbook.
// @Tags cashbooks
// @Accept json
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Param status body dto.SetCashbookStatusRequest true "New status"
// @Success 200 {object} dto.CashbookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/status [put]
func (h *cashbookHandler) setCashbookStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.SetCashbookStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	cashbook, err := h.cashbookService.SetCashbookStatus(c.Request.Context(), c.Param("cashbook_id"), req.Status, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to change cashbook status")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashbookResponse(cashbook))
}

// softDeleteCashbook godoc
// @Summary Move a cashbook to the recycle bin
// @Tags cashbooks
// @Param cashbook_id path string true "Cashbook ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id} [delete]
func (h *cashbookHandler) softDeleteCashbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.cashbookService.SoftDeleteCashbook(c.Request.Context(), c.Param("cashbook_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete cashbook")
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreCashbook godoc
// @Summary Restore a cashbook from the recycle bin
// @Tags cashbooks
// @Param cashbook_id path string true "Cashbook ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/restore [post]
func (h *cashbookHandler) restoreCashbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.cashbookService.RestoreCashbook(c.Request.Context(), c.Param("cashbook_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to restore cashbook")
		return
	}
	c.Status(http.StatusNoContent)
}

// listDeletedCashbooks godoc
// @Summary List the recycle bin
// @Tags cashbooks
// @Produce json
// @Success 200 {object} dto.ListCashbooksResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /recycle-bin/cashbooks [get]
func (h *cashbookHandler) listDeletedCashbooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	cashbooks, err := h.cashbookService.ListDeletedCashbooks(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list recycle bin")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCashbooksResponse(cashbooks))
}
