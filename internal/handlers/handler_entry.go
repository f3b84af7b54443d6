package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/designerabdulhai/hhdcashfinal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler handles entries, balances and the spreadsheet export of a cashbook.
type entryHandler struct {
	entryService  portssvc.EntrySvc
	exportService portssvc.ExportSvc
}

func newEntryHandler(es portssvc.EntrySvc, xs portssvc.ExportSvc) *entryHandler {
	return &entryHandler{entryService: es, exportService: xs}
}

// RegisterEntryRoutes registers the entry routes nested under a cashbook.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvc, exportService portssvc.ExportSvc) {
	h := newEntryHandler(entryService, exportService)

	cashbook := rg.Group("/cashbooks/:cashbook_id")
	{
		cashbook.GET("/entries", h.listEntries)
		cashbook.POST("/entries", h.createEntry)
		cashbook.PUT("/entries/:entry_id", h.updateEntry)
		cashbook.DELETE("/entries/:entry_id", h.deleteEntry)
		cashbook.POST("/entries/:entry_id/verify", h.verifyEntry)
		cashbook.GET("/balance", h.getBalance)
		cashbook.GET("/export", h.exportEntries)
	}
}

// listEntries godoc
// @Summary List entries of a cashbook
// @Description Newest first, keyset paginated via nextToken.
// @Tags entries
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.entryService.ListEntries(c.Request.Context(), c.Param("cashbook_id"), userID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, page)
}

// createEntry godoc
// @Summary Post an entry
// @Description IN and OUT need a positive amount, a NOTE may carry zero. The cashbook must be active.
// @Tags entries
// @Accept json
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Param entry body dto.CreateEntryRequest true "Entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), c.Param("cashbook_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post entry")
		return
	}
	logger.Info("Entry posted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Edit an entry
// @Tags entries
// @Accept json
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Param entry_id path string true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/entries/{entry_id} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), c.Param("cashbook_id"), c.Param("entry_id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Tags entries
// @Param cashbook_id path string true "Cashbook ID"
// @Param entry_id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/entries/{entry_id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	if err := h.entryService.DeleteEntry(c.Request.Context(), c.Param("cashbook_id"), c.Param("entry_id"), userID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// verifyEntry godoc
// @Summary Verify an entry
// @Description Owner only. Verifying twice is harmless.
// @Tags entries
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/entries/{entry_id}/verify [post]
func (h *entryHandler) verifyEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	entry, err := h.entryService.VerifyEntry(c.Request.Context(), c.Param("cashbook_id"), c.Param("entry_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// getBalance godoc
// @Summary Cashbook balance
// @Description Total IN minus total OUT. NOTE entries do not count.
// @Tags entries
// @Produce json
// @Param cashbook_id path string true "Cashbook ID"
// @Success 200 {object} domain.Balance
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/balance [get]
func (h *entryHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	balance, err := h.entryService.GetBalance(c.Request.Context(), c.Param("cashbook_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}

// exportEntries godoc
// @Summary Export entries to Excel
// @Tags entries
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param cashbook_id path string true "Cashbook ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /cashbooks/{cashbook_id}/export [get]
func (h *entryHandler) exportEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	file, err := h.exportService.ExportEntries(c.Request.Context(), c.Param("cashbook_id"), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to export cashbook")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
