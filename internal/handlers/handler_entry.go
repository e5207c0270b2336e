package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dailyforge/journal_backend/internal/apperrors"
	portssvc "github.com/dailyforge/journal_backend/internal/core/ports/services"
	"github.com/dailyforge/journal_backend/internal/dto"
	"github.com/dailyforge/journal_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// entryHandler handles HTTP requests related to journal entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

// newEntryHandler creates a new entryHandler.
func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{
		entryService: es,
	}
}

// RegisterEntryRoutes registers all entry-related routes.
func RegisterEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:id", h.getEntry)
		entries.PATCH("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
		entries.DELETE("", h.deleteAllEntries)
	}
}

// respondWithServiceError maps service-layer errors onto HTTP status codes.
// Transient store failures must never masquerade as not-found.
func respondWithServiceError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Same-day entry conflict")
		c.JSON(http.StatusConflict, ErrorResponse{Error: "You already have an entry for today."})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Entry not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found"})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error("Store unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Storage temporarily unavailable"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// createEntry godoc
// @Summary Create today's journal entry
// @Description Creates the authenticated subject's entry for the current day. At most one entry per subject per calendar day.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry fields"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse "Validation failure"
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry for today already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	subject, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Subject not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), req, subject)
	if err != nil {
		respondWithServiceError(c, err, "create entry")
		return
	}

	logger.Info("Entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List all journal entries
// @Description Retrieves every entry ordered by creation time descending. Served from a short-lived cache when fresh.
// @Tags entries
// @Produce json
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.entryService.ListEntries(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "list entries")
		return
	}

	logger.Info("Entries listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// getEntry godoc
// @Summary Get an entry by ID
// @Description Retrieves a single entry. Malformed identifiers are reported as not found.
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	entryID := c.Param("id")

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondWithServiceError(c, err, "retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Partially update an entry
// @Description Updates only the supplied fields; each is revalidated. updated_at always advances on success.
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{id} [patch]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), entryID, req)
	if err != nil {
		respondWithServiceError(c, err, "update entry")
		return
	}

	logger.Info("Entry updated successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete an entry
// @Description Permanently removes a single entry.
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		respondWithServiceError(c, err, "delete entry")
		return
	}

	logger.Info("Entry deleted successfully", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}

// deleteAllEntries godoc
// @Summary Delete all journal entries
// @Description Permanently removes every entry and reports the removed count.
// @Tags entries
// @Produce json
// @Success 200 {object} dto.DeleteAllEntriesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /entries [delete]
func (h *entryHandler) deleteAllEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	count, err := h.entryService.DeleteAllEntries(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "delete all entries")
		return
	}

	logger.Info("All entries deleted", slog.Int64("count", count))
	c.JSON(http.StatusOK, dto.DeleteAllEntriesResponse{Deleted: count})
}
