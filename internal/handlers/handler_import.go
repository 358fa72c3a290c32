package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reymancasio5-bit/accountingproject/internal/apperrors"
	portssvc "github.com/reymancasio5-bit/accountingproject/internal/core/ports/services"
	"github.com/reymancasio5-bit/accountingproject/internal/dto"
	"github.com/reymancasio5-bit/accountingproject/internal/middleware"
)

// importHandler handles document import: classify extracted text into
// candidate entries, then commit the ones the user confirmed.
type importHandler struct {
	classifierService portssvc.ClassifierSvcFacade
}

// newImportHandler creates a new importHandler.
func newImportHandler(cs portssvc.ClassifierSvcFacade) *importHandler {
	return &importHandler{
		classifierService: cs,
	}
}

// registerImportRoutes registers routes related to document imports.
func registerImportRoutes(rg *gin.RouterGroup, classifierService portssvc.ClassifierSvcFacade) {
	h := newImportHandler(classifierService)

	imports := rg.Group("/imports")
	{
		imports.POST("/classify", h.classify)
		imports.POST("/commit", h.commit)
	}
}

// classify godoc
// @Summary Classify document text
// @Description Proposes candidate journal entries from extracted document text
// @Tags imports
// @Accept  json
// @Produce  json
// @Param   request body dto.ClassifyRequest true "Extracted text"
// @Success 200 {object} dto.ClassifyResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 422 {object} map[string]string "No recognizable transactions found"
// @Failure 500 {object} map[string]string "Failed to classify document"
// @Router /imports/classify [post]
func (h *importHandler) classify(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Classify", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	candidates, err := h.classifierService.ProposeEntries(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to classify document text", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to classify document"})
		}
		return
	}

	if len(candidates) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no recognizable transactions found"})
		return
	}

	c.JSON(http.StatusOK, dto.ClassifyResponse{Candidates: candidates})
}

// commit godoc
// @Summary Commit reviewed candidates
// @Description Posts each confirmed candidate as one balanced journal entry
// @Tags imports
// @Accept  json
// @Produce  json
// @Param   request body dto.CommitCandidatesRequest true "Reviewed candidates"
// @Success 201 {object} dto.CommitCandidatesResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 422 {object} map[string]string "A candidate failed validation"
// @Failure 500 {object} map[string]string "Failed to commit candidates"
// @Router /imports/commit [post]
func (h *importHandler) commit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CommitCandidatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Commit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	entries, err := h.classifierService.CommitCandidates(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Candidate commit rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to commit candidates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit candidates"})
		}
		return
	}

	resp := dto.CommitCandidatesResponse{Entries: make([]dto.EntryResponse, len(entries))}
	for i := range entries {
		resp.Entries[i] = dto.ToEntryResponse(&entries[i])
	}

	logger.Info("Candidates committed successfully", slog.Int("entry_count", len(entries)))
	c.JSON(http.StatusCreated, resp)
}
